package gate

import "testing"

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "single word",
			text: "Thanks.",
			want: 5,
		},
		{
			name: "under twenty five words",
			text: "We have received your request and will review it within two business days.",
			want: 20,
		},
		{
			name: "two proper sentences no frame",
			text: "I understand this is frustrating, but our 30-day return policy means I cannot approve this myself. I'm escalating this to my supervisor who will respond within 2 business days.",
			want: 45,
		},
		{
			name: "lowercase multi sentence",
			text: "we received your complaint about the broken item and we are sorry. our team will send a replacement unit to your address soon. please keep the original packaging until the courier arrives for pickup.",
			want: 35,
		},
		{
			name: "long framed response",
			text: "Hello, thank you for reaching out to our support team about your recent order. I understand how frustrating a delayed delivery can be. Let me walk you through the next steps so we can resolve this quickly. First, I have opened a review of your shipment with our logistics team. You will receive an update within 2 business days. Thanks for your patience.",
			want: 90,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := QualityScore(test.text)
			if got != test.want {
				t.Errorf("QualityScore() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Hello there. Ok. What happens next? Nothing!")
	want := []string{"Hello there", "What happens next", "Nothing"}
	if len(got) != len(want) {
		t.Fatalf("SplitSentences() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

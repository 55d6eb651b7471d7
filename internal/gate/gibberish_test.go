package gate

import "testing"

func TestIsGibberish(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		gibberish bool
	}{
		{
			name:      "normal support response",
			text:      "I understand this is frustrating. Let me help you with your refund request today.",
			gibberish: false,
		},
		{
			name:      "short text under ten characters",
			text:      "ok thanks",
			gibberish: true,
		},
		{
			name:      "fewer than three tokens",
			text:      "understandable situation",
			gibberish: true,
		},
		{
			name:      "keyboard mash with no recognized words",
			text:      "asdkjf asldkj aslkdj alskdj",
			gibberish: true,
		},
		{
			name:      "no vowels",
			text:      "grr brr trr krr psst hmm tsk tsk tsk",
			gibberish: true,
		},
		{
			name:      "repeated character run",
			text:      "I am soooooo happy to help you with this",
			gibberish: true,
		},
		{
			name:      "same word repeated many times",
			text:      "help help help help help help help help",
			gibberish: true,
		},
		{
			name:      "borderline but real english",
			text:      "We will review your account and get back to you.",
			gibberish: false,
		},
		{
			name:      "empty string",
			text:      "",
			gibberish: true,
		},
		{
			name:      "whitespace only",
			text:      "   \n\t  ",
			gibberish: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := IsGibberish(test.text)
			if got != test.gibberish {
				t.Errorf("IsGibberish(%q) = %v, want %v", test.text, got, test.gibberish)
			}
		})
	}
}

package metrics

import (
	"testing"

	"github.com/casewise/compliance-agent/internal/models"
)

const escalationResponse = "I understand this is frustrating, but our 30-day return policy means I cannot approve this myself. I'm escalating this to my supervisor who will respond within 2 business days."

func TestComputeZeroBundle(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		text string
	}{
		{"gibberish", "asdkjf asldkj aslkdj alskdj"},
		{"unrecognized words", "ok thanks bye"},
		{"too few words", "thank you so much"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bundle := engine.Compute(test.text, models.Scenario{}, models.Verdict{})

			want := models.MetricsBundle{ResponseLength: len(test.text)}
			if bundle != want {
				t.Errorf("Compute(%q) = %+v, want all-zero bundle with length %d", test.text, bundle, len(test.text))
			}
		})
	}
}

func TestComputeBundle(t *testing.T) {
	engine := NewEngine()
	bundle := engine.Compute(escalationResponse, models.Scenario{}, models.Verdict{})

	if bundle.CoherenceScore != 50 {
		t.Errorf("coherence = %d, want 50", bundle.CoherenceScore)
	}
	if bundle.ClarityScore != 50 {
		t.Errorf("clarity = %d, want 50", bundle.ClarityScore)
	}
	if bundle.ProfessionalismScore != 20 {
		t.Errorf("professionalism = %d, want 20", bundle.ProfessionalismScore)
	}
	if bundle.ResponseLength != len(escalationResponse) {
		t.Errorf("response length = %d, want %d", bundle.ResponseLength, len(escalationResponse))
	}
	if bundle.KeywordCoverage != 0 {
		t.Errorf("keyword coverage = %d, want 0 with no required actions", bundle.KeywordCoverage)
	}
}

func TestComputeScoreRanges(t *testing.T) {
	engine := NewEngine()
	responses := []string{
		escalationResponse,
		"Hello, thank you for reaching out. I am happy to help you with this today. Please send me your order number and we will review it within 2 business days. Best regards.",
		"unfortunately we cannot fix this problem and the error will fail again.",
		"Our system shows your account was flagged wrong, sorry about that.",
	}

	for _, response := range responses {
		bundle := engine.Compute(response, models.Scenario{}, models.Verdict{})
		scores := map[string]int{
			"coherence":       bundle.CoherenceScore,
			"empathy":         bundle.EmpathyScore,
			"clarity":         bundle.ClarityScore,
			"professionalism": bundle.ProfessionalismScore,
			"sentiment":       bundle.SentimentScore,
			"readability":     bundle.ReadabilityScore,
			"coverage":        bundle.KeywordCoverage,
		}
		for name, score := range scores {
			if score < 0 || score > 100 {
				t.Errorf("%s score for %.30q... = %d, out of range", name, response, score)
			}
		}
	}
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"too short", "short", 0},
		{"neutral", "the package arrived at your address on monday afternoon.", 50},
		{"positive", "we are happy to help you today, thank you for reaching out.", 74},
		{"negative", "unfortunately we cannot fix this problem and the error will fail again.", 25},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := sentiment(test.text)
			if got != test.want {
				t.Errorf("sentiment(%q) = %d, want %d", test.text, got, test.want)
			}
		})
	}
}

func TestEmpathy(t *testing.T) {
	t.Run("warm response maxes out", func(t *testing.T) {
		got := empathy("i understand how frustrating this must be and i am sorry for the inconvenience, happy to help.")
		if got != 100 {
			t.Errorf("empathy = %d, want 100", got)
		}
	})

	t.Run("cold response bottoms out", func(t *testing.T) {
		got := empathy("your request is denied, this is impossible and we refuse to process it, never contact us again.")
		if got != 0 {
			t.Errorf("empathy = %d, want 0", got)
		}
	})
}

func TestKeywordCoverage(t *testing.T) {
	scenario := models.Scenario{
		RequiredActions: []string{"provide ticket number", "explain refund policy"},
	}

	tests := []struct {
		name     string
		response string
		scenario models.Scenario
		want     int
	}{
		{"no requirements", "anything at all.", models.Scenario{}, 0},
		{"full coverage", "your ticket number is 4521 and our refund policy allows returns.", scenario, 100},
		{"half coverage", "your ticket number is 4521.", scenario, 50},
		{"no coverage", "we will look into it soon.", scenario, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := keywordCoverage(test.response, test.scenario)
			if got != test.want {
				t.Errorf("keywordCoverage() = %d, want %d", got, test.want)
			}
		})
	}
}

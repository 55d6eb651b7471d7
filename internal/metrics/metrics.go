// Package metrics computes the supplementary linguistic scores that accompany
// a verdict: coherence, empathy, clarity, professionalism, sentiment,
// readability and keyword coverage, all on a 0-100 scale. Every score starts
// at a pessimistic floor and earns credit for detected positive signals, so
// short or vapid text cannot coast on defaults.
package metrics

import (
	"strings"

	"github.com/casewise/compliance-agent/internal/gate"
	"github.com/casewise/compliance-agent/internal/models"
)

// Engine computes metric bundles. Stateless and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Compute builds the full metrics bundle for a response. It never fails:
// text that is too low quality to score meaningfully yields an all-zero
// bundle (response length is still recorded). The verdict is accepted for
// interface symmetry with the rule engine; metrics never mutate or depend
// on it.
func (en *Engine) Compute(response string, scenario models.Scenario, verdict models.Verdict) models.MetricsBundle {
	_ = verdict

	lower := strings.ToLower(response)

	// The rule engine's gate guarantees all-zero scores on gibberish; the
	// cheaper low-quality probe catches text that parses as language but is
	// too thin to rate.
	if gate.IsGibberish(response) || isLowQuality(lower) {
		return models.MetricsBundle{ResponseLength: len(response)}
	}

	return models.MetricsBundle{
		CoherenceScore:       coherence(lower),
		EmpathyScore:         empathy(lower),
		ClarityScore:         clarity(lower),
		ProfessionalismScore: professionalism(lower, response),
		SentimentScore:       sentiment(lower),
		ReadabilityScore:     readability(response),
		KeywordCoverage:      keywordCoverage(lower, scenario),
		ResponseLength:       len(response),
	}
}

// isLowQuality is the metrics-side pre-check: too few words, no sentence
// punctuation, or a vowel ratio no real language has.
func isLowQuality(lower string) bool {
	words := strings.Fields(lower)
	if len(words) < 5 {
		return true
	}

	if len(gate.SplitSentences(lower)) == 0 && len(words) > 5 {
		return true
	}

	letters, vowels := 0, 0
	for _, r := range lower {
		if r >= 'a' && r <= 'z' {
			letters++
			switch r {
			case 'a', 'e', 'i', 'o', 'u':
				vowels++
			}
		}
	}
	if letters > 5 && float64(vowels)/float64(letters) < 0.15 {
		return true
	}

	return false
}

// countHits counts how many distinct phrases from the list occur in the text.
func countHits(text string, phrases []string) int {
	hits := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			hits++
		}
	}
	return hits
}

func clamp(score int) int {
	return max(0, min(100, score))
}

package gate

import (
	"strings"

	"github.com/casewise/compliance-agent/internal/lexicon"
)

// QualityScore rates the structural quality of a response on a 0-100 scale.
// It is not a standalone dimension; the rule engine uses it to clamp the
// final compliance score. Scoring starts from zero and earns credit for
// length, sentence structure and a professional frame.
func QualityScore(text string) int {
	words := strings.Fields(text)
	sentences := SplitSentences(text)

	if len(words) < 10 {
		return 5
	}
	if len(words) < 25 {
		return 20
	}
	if len(sentences) == 0 {
		return 10
	}

	score := 0
	if len(words) >= 25 {
		score += 20
	}
	if len(words) >= 50 {
		score += 15
	}
	if len(words) >= 100 {
		score += 10
	}
	if len(sentences) >= 2 {
		score += 15
	}
	if len(sentences) >= 4 {
		score += 10
	}

	if lexicon.Greeting.MatchString(text) {
		score += 10
	}
	if lexicon.Signoff.MatchString(text) {
		score += 10
	}

	properCaps := 0
	for _, s := range sentences {
		first := s[0]
		if first >= 'A' && first <= 'Z' {
			properCaps++
		}
	}
	if float64(properCaps)/float64(max(len(sentences), 1)) > 0.5 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// SplitSentences splits on terminal punctuation and keeps only fragments
// longer than three characters after trimming.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 3 {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

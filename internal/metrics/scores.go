package metrics

import (
	"regexp"
	"strings"

	"github.com/casewise/compliance-agent/internal/gate"
	"github.com/casewise/compliance-agent/internal/lexicon"
)

var hasDigit = regexp.MustCompile(`\d+`)

// coherence rewards logical structure: multiple sentences, transition words,
// paragraph breaks, readable sentence length and vocabulary diversity.
func coherence(lower string) int {
	words := strings.Fields(lower)
	sentences := gate.SplitSentences(lower)

	if len(words) < 10 || len(sentences) < 1 {
		return 5
	}

	score := 0
	if len(sentences) >= 2 {
		score += 20
	}
	if len(sentences) >= 3 {
		score += 10
	}
	if len(sentences) >= 5 {
		score += 5
	}

	score += min(countHits(lower, lexicon.StructureMarkers)*5, 25)

	if strings.Contains(lower, "\n") {
		score += 10
	}

	avgWords := float64(len(words)) / float64(len(sentences))
	if avgWords >= 5 && avgWords <= 25 {
		score += 15
	}

	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[stripNonLetters(w)] = true
	}
	if float64(len(unique))/float64(len(words)) > 0.5 {
		score += 15
	}

	return clamp(score)
}

// empathy rewards empathetic phrasing, acknowledgment of the customer's
// situation and offers of help; cold or dismissive wording costs points.
func empathy(lower string) int {
	if len(strings.Fields(lower)) < 5 {
		return 0
	}

	score := min(countHits(lower, lexicon.EmpathyWords)*12, 60)

	if lexicon.Acknowledgment.MatchString(lower) {
		score += 20
	}
	if lexicon.OfferOfHelp.MatchString(lower) {
		score += 20
	}

	score -= countHits(lower, lexicon.ColdWords) * 10

	return clamp(score)
}

// clarity rewards actionable, specific, direct language in digestible
// sentences; legal jargon costs points.
func clarity(lower string) int {
	words := strings.Fields(lower)
	sentences := gate.SplitSentences(lower)
	if len(words) < 5 {
		return 0
	}

	score := min(countHits(lower, lexicon.ActionWords)*8, 30)

	if hasDigit.MatchString(lower) {
		score += 10
	}
	if lexicon.TimeDuration.MatchString(lower) {
		score += 5
	}

	if len(sentences) > 0 {
		avgWords := float64(len(words)) / float64(len(sentences))
		if avgWords <= 20 {
			score += 20
		} else if avgWords <= 30 {
			score += 10
		}
	}

	if len(sentences) >= 2 {
		score += 15
	}

	score -= countHits(lower, lexicon.JargonPhrases) * 10

	if lexicon.Directness.MatchString(lower) {
		score += 10
	}

	return clamp(score)
}

// professionalism rewards courteous phrasing, a greeting and sign-off, proper
// capitalization and adequate length; slang and shouting cost points. The
// original-cased text is needed for the capitalization checks.
func professionalism(lower, original string) int {
	words := strings.Fields(lower)
	if len(words) < 5 {
		return 0
	}

	score := min(countHits(lower, lexicon.ProfessionalMarkers)*8, 35)

	if lexicon.ProfessionalGreeting.MatchString(lower) {
		score += 15
	}
	if lexicon.ProfessionalSignoff.MatchString(lower) {
		score += 15
	}

	trimmed := strings.TrimSpace(original)
	if trimmed != "" && trimmed[0] >= 'A' && trimmed[0] <= 'Z' {
		score += 10
	}

	if len(gate.SplitSentences(lower)) >= 2 {
		score += 10
	}
	if len(words) >= 30 {
		score += 15
	}

	score -= countHits(lower, lexicon.CasualWords) * 20
	score -= min(len(lexicon.AllCapsWord.FindAllString(original, -1))*8, 20)

	return clamp(score)
}

// sentiment balances positive against negative vocabulary around a neutral
// baseline of 50.
func sentiment(lower string) int {
	if len(strings.Fields(lower)) < 5 {
		return 0
	}

	raw := 50 + countHits(lower, lexicon.PositiveWords)*8 - countHits(lower, lexicon.NegativeWords)*5
	return clamp(raw)
}

func stripNonLetters(w string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, w)
}

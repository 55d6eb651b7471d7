package metrics

import (
	"math"
	"regexp"
	"strings"

	"github.com/casewise/compliance-agent/internal/gate"
)

var (
	silentEnding    = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY        = regexp.MustCompile(`^y`)
	vowelGroups     = regexp.MustCompile(`[aeiouy]{1,2}`)
	nonLowerLetters = regexp.MustCompile(`[^a-z]`)
)

// readability is the Flesch Reading Ease score clamped to [0,100]; higher
// means easier to read.
func readability(text string) int {
	sentences := gate.SplitSentences(text)
	words := strings.Fields(text)

	if len(sentences) == 0 || len(words) < 5 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	return clamp(int(math.Round(score)))
}

// countSyllables estimates syllables by counting vowel clusters after
// stripping common silent endings. Short words count as one syllable.
func countSyllables(word string) int {
	word = nonLowerLetters.ReplaceAllString(strings.ToLower(word), "")
	if len(word) <= 3 {
		return 1
	}

	word = silentEnding.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")

	n := len(vowelGroups.FindAllString(word, -1))
	if n == 0 {
		return 1
	}
	return n
}

// Package gate classifies raw response text before any scoring happens. The
// gibberish check keeps the downstream heuristics from producing misleadingly
// high scores on nonsense, and the structural quality score feeds the
// compliance-score clamps.
package gate

import (
	"strings"
	"unicode"

	"github.com/casewise/compliance-agent/internal/lexicon"
)

// IsGibberish reports whether text is not coherent natural language. Any one
// failing check classifies the text as gibberish; there is no partial result.
func IsGibberish(text string) bool {
	cleaned := strings.TrimSpace(text)
	if len(cleaned) < 10 {
		return true
	}

	tokens := strings.Fields(cleaned)
	if len(tokens) < 3 {
		return true
	}

	words := normalizeTokens(tokens)
	if len(words) == 0 {
		return true
	}

	recognized := 0
	for _, w := range words {
		if lexicon.CommonWords[w] {
			recognized++
		}
	}
	if float64(recognized)/float64(len(words)) < 0.25 {
		return true
	}

	letters, vowels := 0, 0
	for _, r := range cleaned {
		if unicode.IsLetter(r) {
			letters++
			if isVowel(unicode.ToLower(r)) {
				vowels++
			}
		}
	}
	if letters > 0 {
		ratio := float64(vowels) / float64(letters)
		if ratio < 0.15 || ratio > 0.7 {
			return true
		}
	}

	if hasRepeatedRun(strings.ToLower(cleaned), 5) {
		return true
	}

	if len(words) > 5 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		if float64(len(unique))/float64(len(words)) < 0.3 {
			return true
		}
	}

	return false
}

// normalizeTokens lower-cases tokens and strips everything but letters and
// apostrophes, dropping tokens that end up empty.
func normalizeTokens(tokens []string) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		w := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || r == '\'' {
				return r
			}
			return -1
		}, strings.ToLower(t))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// hasRepeatedRun reports whether any single rune repeats at least n times in
// a row.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

package domain

import (
	"strings"
)

// NormalizeLemma lowercases a WordNet label and reports whether the result is
// a single alphabetic token matching [a-z]+.
//
// Multi-word lemmas ("ice_cream"), hyphenated terms, numerals, punctuation and
// non-ASCII letters are rejected. Surrounding whitespace is not trimmed.
func NormalizeLemma(label string) (string, bool) {
	if label == "" {
		return "", false
	}
	word := strings.ToLower(label)
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return "", false
		}
	}
	return word, true
}

// Package textcheck provides heuristic classifiers for short free-text fragments of a CV.
package textcheck

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases text and strips combining marks ("Développeur" -> "developpeur").
// Characters without a decomposition (œ, ß, CJK) are kept as-is.
func Fold(text string) string {
	if text == "" {
		return ""
	}

	// Transformers carry state, so a fresh chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	return cases.Lower(language.Und).String(stripped)
}

// Normalize folds text and keeps only [a-z0-9 ].
func Normalize(text string) string {
	folded := Fold(text)

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			sb.WriteRune(r)
		}
	}

	return strings.TrimSpace(sb.String())
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isConsonant(b byte) bool {
	return isLetter(b) && !isVowel(b)
}

// longestConsonantRun returns the longest stretch of consecutive consonants in s.
func longestConsonantRun(s string) int {
	longest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if isConsonant(s[i]) {
			current++
			longest = max(longest, current)
			continue
		}
		current = 0
	}
	return longest
}

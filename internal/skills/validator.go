package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-auditor/internal/textcheck"
)

// minReverseMatchLength keeps one- and two-letter inputs from matching inside dictionary words.
const minReverseMatchLength = 3

var (
	acronymPattern = regexp.MustCompile(`^[A-Z]{2,5}$`)
	// letters first, then letters, digits and the punctuation used in tool names
	wordFormationPattern = regexp.MustCompile(`^\p{L}[\p{L}0-9+#./&' -]{1,49}$`)
	vowelPattern         = regexp.MustCompile(`[aeiouy]`)
)

// Validator checks skill and language entries. Dictionaries are folded once at construction.
type Validator struct {
	gibberish *textcheck.Classifier
	skills    []string
	exact     map[string]bool
	languages []string
}

// NewValidator returns a Validator using the built-in dictionaries.
func NewValidator(gibberish *textcheck.Classifier) *Validator {
	v := &Validator{
		gibberish: gibberish,
		skills:    foldAll(knownSkills),
		exact:     make(map[string]bool, len(exactSkills)),
		languages: foldAll(knownLanguages),
	}
	for _, e := range exactSkills {
		v.exact[textcheck.Fold(e)] = true
	}
	return v
}

func foldAll(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, textcheck.Fold(e))
	}
	return out
}

// IsValidSkill reports whether skill is a recognizable skill: a single-letter language,
// a dictionary match in either direction, a short upper-case acronym, or a well-formed
// non-gibberish term.
func (v *Validator) IsValidSkill(skill string) bool {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return false
	}

	folded := textcheck.Fold(trimmed)
	if v.exact[folded] || matchesEither(folded, v.skills) {
		return true
	}
	if acronymPattern.MatchString(trimmed) {
		return true
	}

	return wordFormationPattern.MatchString(folded) &&
		vowelPattern.MatchString(folded) &&
		!v.gibberish.IsGibberish(trimmed)
}

// IsValidLanguage reports whether name matches a known spoken language in either direction.
func (v *Validator) IsValidLanguage(name string) bool {
	folded := textcheck.Fold(strings.TrimSpace(name))
	if folded == "" {
		return false
	}
	return matchesEither(folded, v.languages)
}

// matchesEither is true when value contains an entry or an entry contains value.
func matchesEither(value string, entries []string) bool {
	reverse := utf8.RuneCountInString(value) >= minReverseMatchLength
	for _, entry := range entries {
		if strings.Contains(value, entry) {
			return true
		}
		if reverse && strings.Contains(entry, value) {
			return true
		}
	}
	return false
}

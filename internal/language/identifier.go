// Package language identifies the dominant language of a CV and flags language-quality problems.
package language

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/types"
)

// Unknown is reported when no language reaches the detection threshold.
const Unknown = "unknown"

const (
	// minIndicatorHits is the number of distinct indicator words a language must exceed.
	minIndicatorHits = 5
	// mixedRatio is the share of the top score the runner-up must exceed to count as code-mixing.
	mixedRatio = 0.3
)

type indicatorSet struct {
	code  string
	words map[string]bool
}

func newIndicatorSet(code string, words ...string) indicatorSet {
	set := indicatorSet{code: code, words: make(map[string]bool, len(words))}
	for _, w := range words {
		set.words[w] = true
	}
	return set
}

// Indicator sets in tie-break order: French beats English beats German on equal counts.
func defaultIndicators() []indicatorSet {
	return []indicatorSet{
		newIndicatorSet("fr",
			"le", "la", "les", "des", "une", "et", "est", "pour", "avec", "dans", "sur", "par",
			"qui", "que", "nous", "du", "au", "aux", "de", "mes", "expérience", "développement",
			"gestion", "équipe", "entreprise"),
		newIndicatorSet("en",
			"the", "and", "with", "for", "of", "to", "in", "is", "my", "our", "experience",
			"development", "management", "team", "skills", "responsible", "years", "project",
			"led", "using"),
		newIndicatorSet("de",
			"der", "die", "das", "und", "mit", "für", "von", "zu", "ist", "ich", "wir", "ein",
			"eine", "erfahrung", "entwicklung", "kenntnisse", "verantwortlich", "jahre", "bei", "im"),
	}
}

// defaultAccepted applies when the target country has no rule.
var defaultAccepted = []string{"en", "fr"}

// Identifier scores profile text against fixed per-language keyword sets.
// It holds only immutable tables and is safe for concurrent use.
type Identifier struct {
	indicators []indicatorSet
	countries  *country.Table
	typos      []typo
}

// NewIdentifier returns an Identifier that resolves market languages through countries.
func NewIdentifier(countries *country.Table) *Identifier {
	return &Identifier{
		indicators: defaultIndicators(),
		countries:  countries,
		typos:      defaultTypos(),
	}
}

// DetectCVLanguage finds the dominant language of the profile's free text.
func (id *Identifier) DetectCVLanguage(profile *types.CVProfile) types.LanguageAnalysis {
	if profile == nil {
		profile = &types.CVProfile{}
	}
	return id.analyze(profile.FreeText())
}

func (id *Identifier) analyze(text string) types.LanguageAnalysis {
	words := wordSet(text)

	scores := make(map[string]int, len(id.indicators))
	maxScore, total := 0, 0
	main := Unknown
	for _, set := range id.indicators {
		hits := 0
		for w := range set.words {
			if words[w] {
				hits++
			}
		}
		scores[set.code] = hits
		total += hits
		// strict comparison keeps the earlier language on ties
		if hits > maxScore {
			maxScore = hits
			main = set.code
		}
	}

	analysis := types.LanguageAnalysis{
		MainLanguage: Unknown,
		Scores:       scores,
	}
	if maxScore <= minIndicatorHits {
		return analysis
	}

	second := 0
	for _, set := range id.indicators {
		if set.code != main {
			second = max(second, scores[set.code])
		}
	}

	analysis.MainLanguage = main
	analysis.Confidence = float64(maxScore) / float64(total) * 100
	analysis.IsMixed = float64(second) > mixedRatio*float64(maxScore)
	return analysis
}

// wordSet composes and lowercases text and returns its distinct letter-only words.
// Composing first keeps "é" written as e plus a combining accent inside its word.
func wordSet(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(norm.NFC.String(text)), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// acceptedLanguages returns the languages a market accepts, falling back to English and French.
func (id *Identifier) acceptedLanguages(countryCode string) []string {
	if id.countries != nil {
		if rule, err := id.countries.Lookup(countryCode); err == nil && len(rule.AcceptedLanguages) > 0 {
			return rule.AcceptedLanguages
		}
	}
	return defaultAccepted
}

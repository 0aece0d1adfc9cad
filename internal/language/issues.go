package language

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-auditor/internal/types"
)

// Penalties of the language-quality checks
const (
	mixedLanguagePenalty   = 25
	wrongLanguagePenalty   = 20
	unidentifiedPenalty    = 15
	typoPenalty            = 4
	passiveVoicePenalty    = 2
	unidentifiedTextLength = 100
)

type typo struct {
	code       string
	pattern    *regexp.Regexp
	correction string
}

func defaultTypos() []typo {
	return []typo{
		{code: "experiance", pattern: regexp.MustCompile(`\bexperiance\b`), correction: "experience"},
		{code: "managment", pattern: regexp.MustCompile(`\bmanagment\b`), correction: "management"},
		{code: "sucessful", pattern: regexp.MustCompile(`\b(sucess|succes|suces)ful\w*`), correction: "successful"},
		{code: "acheive", pattern: regexp.MustCompile(`\bacheiv\w*`), correction: "achieve"},
		{code: "recieve", pattern: regexp.MustCompile(`\brecieve[ds]?\b`), correction: "receive"},
		{code: "enviroment", pattern: regexp.MustCompile(`\benviroment\b`), correction: "environment"},
		{code: "developement", pattern: regexp.MustCompile(`\bdevelopement\b`), correction: "development"},
		{code: "responsable_of", pattern: regexp.MustCompile(`\bresponsable of\b`), correction: "responsible for"},
	}
}

var passivePattern = regexp.MustCompile(`\b(was|were|been)\s+[a-z]+ed\b`)

// DetectLanguageIssues reports code-mixing, market mismatch, unidentifiable text, common typos
// and passive voice. An empty targetCountry skips the market check.
func (id *Identifier) DetectLanguageIssues(profile *types.CVProfile, targetCountry string) []types.Issue {
	if profile == nil {
		profile = &types.CVProfile{}
	}

	text := profile.FreeText()
	analysis := id.analyze(text)
	var issues []types.Issue

	if analysis.IsMixed {
		issues = append(issues, types.NewIssue(types.TypeLanguage, "mixed_language", types.CategoryCritical,
			mixedLanguagePenalty, "",
			fmt.Sprintf("The CV mixes several languages (%s)", describeScores(analysis.Scores)),
			"Write the whole CV in a single language"))
	}

	if strings.TrimSpace(targetCountry) != "" && analysis.MainLanguage != Unknown {
		accepted := id.acceptedLanguages(targetCountry)
		if !contains(accepted, analysis.MainLanguage) {
			issues = append(issues, types.NewIssue(types.TypeLanguage, "wrong_language", types.CategoryCritical,
				wrongLanguagePenalty, "",
				fmt.Sprintf("The CV is written in '%s', which is not expected for the %s market",
					analysis.MainLanguage, strings.ToUpper(strings.TrimSpace(targetCountry))),
				fmt.Sprintf("Translate the CV into one of: %s", strings.Join(accepted, ", "))))
		}
	}

	if analysis.MainLanguage == Unknown && utf8.RuneCountInString(text) > unidentifiedTextLength {
		issues = append(issues, types.NewIssue(types.TypeLanguage, "unidentified_language", types.CategoryWarning,
			unidentifiedPenalty, "",
			"The language of the CV could not be identified",
			"Use complete sentences in a single language"))
	}

	lower := strings.ToLower(text)
	for _, t := range id.typos {
		match := t.pattern.FindString(lower)
		if match == "" {
			continue
		}
		issues = append(issues, types.NewIssue(types.TypeLanguage, "typo_"+t.code, types.CategoryWarning,
			typoPenalty, "",
			fmt.Sprintf("Spelling mistake: '%s'", match),
			fmt.Sprintf("Write '%s'", t.correction)))
	}

	if passivePattern.MatchString(lower) {
		issues = append(issues, types.NewIssue(types.TypeLanguage, "passive_voice", types.CategoryInfo,
			passiveVoicePenalty, "",
			"Passive voice detected",
			"Prefer active verbs: 'Led the migration' rather than 'The migration was led'"))
	}

	return issues
}

func describeScores(scores map[string]int) string {
	codes := make([]string, 0, len(scores))
	for code, n := range scores {
		if n > 0 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s: %d", code, scores[code]))
	}
	return strings.Join(parts, ", ")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Package rules implements the detection rule modules run by the audit engine.
// Every rule is pure: it reads the profile and context and returns the issues it found.
package rules

import (
	"time"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/language"
	"github.com/jonathan/cv-auditor/internal/skills"
	"github.com/jonathan/cv-auditor/internal/textcheck"
	"github.com/jonathan/cv-auditor/internal/types"
)

// Context carries the per-audit inputs shared by all rules.
type Context struct {
	CountryCode string
	Country     country.Rule
	Now         time.Time
}

// Rule is one detection module.
type Rule interface {
	// Type is the rule family every issue of this rule is tagged with.
	Type() types.IssueType
	// Check returns the issues found in profile. It must not mutate profile and must
	// accept empty or partially filled profiles.
	Check(profile *types.CVProfile, ctx Context) []types.Issue
}

// Default returns the eight modules in their fixed execution order.
func Default(gibberish *textcheck.Classifier, validator *skills.Validator, identifier *language.Identifier) []Rule {
	return []Rule{
		NewTypography(gibberish, validator),
		NewContentQuality(),
		NewRegionalCompliance(),
		NewChronology(),
		NewContact(),
		NewATSCompatibility(),
		NewIndustrySpecific(),
		NewLanguageQuality(identifier),
	}
}

// Quick returns the low-latency subset used for live feedback.
func Quick() []Rule {
	return []Rule{NewContact(), NewRegionalCompliance(), NewContentQuality()}
}

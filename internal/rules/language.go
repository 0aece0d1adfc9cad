package rules

import (
	"github.com/jonathan/cv-auditor/internal/language"
	"github.com/jonathan/cv-auditor/internal/types"
)

// LanguageQuality reports language mixing, wrong-market language, spelling and style.
type LanguageQuality struct {
	identifier *language.Identifier
}

func NewLanguageQuality(identifier *language.Identifier) *LanguageQuality {
	return &LanguageQuality{identifier: identifier}
}

func (r *LanguageQuality) Type() types.IssueType { return types.TypeLanguage }

func (r *LanguageQuality) Check(p *types.CVProfile, ctx Context) []types.Issue {
	return r.identifier.DetectLanguageIssues(p, ctx.CountryCode)
}

// Package audit runs the detection rules over a profile and turns their issues into scores.
package audit

import (
	"time"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/language"
	"github.com/jonathan/cv-auditor/internal/rules"
	"github.com/jonathan/cv-auditor/internal/skills"
	"github.com/jonathan/cv-auditor/internal/textcheck"
	"github.com/jonathan/cv-auditor/internal/types"
)

// Engine bundles the classifiers, the country table and the ordered rule modules.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules      []rules.Rule
	quick      []rules.Rule
	countries  *country.Table
	identifier *language.Identifier
	now        func() time.Time
}

// Option customizes an Engine
type Option func(*Engine)

// WithClock sets the clock used for audit timestamps and year plausibility checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over the given country table.
func New(countries *country.Table, opts ...Option) *Engine {
	gibberish := textcheck.New()
	identifier := language.NewIdentifier(countries)
	e := &Engine{
		rules:      rules.Default(gibberish, skills.NewValidator(gibberish), identifier),
		quick:      rules.Quick(),
		countries:  countries,
		identifier: identifier,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefault builds an engine over the built-in country table.
func NewDefault(opts ...Option) *Engine {
	return New(country.Default(), opts...)
}

// Countries returns the country table the engine audits against.
func (e *Engine) Countries() *country.Table {
	return e.countries
}

// DetectLanguage reports the dominant language of the profile's free text.
func (e *Engine) DetectLanguage(profile *types.CVProfile) types.LanguageAnalysis {
	return e.identifier.DetectCVLanguage(profile)
}

// Analyze audits profile for the target market. An empty countryCode selects the default
// market; an unknown one returns *country.UnknownCountryError. A nil profile audits as empty.
func (e *Engine) Analyze(profile *types.CVProfile, countryCode string) (*types.Audit, error) {
	if profile == nil {
		profile = &types.CVProfile{}
	}
	ctx, err := e.context(countryCode)
	if err != nil {
		return nil, err
	}

	issues := runRules(e.rules, profile, ctx)

	audit := &types.Audit{
		CriticalErrors:    []types.Issue{},
		Warnings:          []types.Issue{},
		Improvements:      []types.Issue{},
		Info:              []types.Issue{},
		TotalIssues:       len(issues),
		CategoryBreakdown: make(map[types.IssueType]int, len(types.IssueTypes)),
		TargetCountry:     ctx.CountryCode,
		Timestamp:         ctx.Now,
	}
	for _, t := range types.IssueTypes {
		audit.CategoryBreakdown[t] = 0
	}
	for _, is := range issues {
		switch is.Category {
		case types.CategoryCritical:
			audit.CriticalErrors = append(audit.CriticalErrors, is)
		case types.CategoryWarning:
			audit.Warnings = append(audit.Warnings, is)
		case types.CategoryImprovement:
			audit.Improvements = append(audit.Improvements, is)
		default:
			audit.Info = append(audit.Info, is)
		}
		audit.CategoryBreakdown[is.Type]++
	}

	audit.Completeness = CheckCompleteness(profile)
	audit.RawScore = computeScore(audit.Completeness.MaxScore, issues)
	audit.Score = round(audit.RawScore)
	audit.RawATSScore = computeATSScore(issues)
	audit.EstimatedATSScore = round(audit.RawATSScore)
	audit.Grade = GradeFor(audit.Score)
	audit.Readiness = ReadinessFor(len(audit.CriticalErrors), audit.Score)
	audit.Language = e.identifier.DetectCVLanguage(profile)

	return audit, nil
}

// QuickCheck runs the contact, regional and content rules only and scores them without the
// completeness cap or the critical multiplier.
func (e *Engine) QuickCheck(profile *types.CVProfile, countryCode string) (types.QuickCheckResult, error) {
	if profile == nil {
		profile = &types.CVProfile{}
	}
	ctx, err := e.context(countryCode)
	if err != nil {
		return types.QuickCheckResult{}, err
	}

	issues := runRules(e.quick, profile, ctx)

	result := types.QuickCheckResult{Score: round(clamp(maxScore - totalPenalty(issues)))}
	var top *types.Issue
	for i := range issues {
		if issues[i].Category != types.CategoryCritical {
			continue
		}
		result.CriticalCount++
		if top == nil {
			top = &issues[i]
		}
	}
	if top == nil && len(issues) > 0 {
		top = &issues[0]
	}
	if top != nil {
		msg := top.Message
		result.TopIssue = &msg
	}
	return result, nil
}

func (e *Engine) context(countryCode string) (rules.Context, error) {
	code := country.NormalizeCode(countryCode)
	if code == "" {
		code = country.DefaultCode
	}
	rule, err := e.countries.Lookup(code)
	if err != nil {
		return rules.Context{}, err
	}
	return rules.Context{CountryCode: code, Country: rule, Now: e.now()}, nil
}

func runRules(rs []rules.Rule, profile *types.CVProfile, ctx rules.Context) []types.Issue {
	var issues []types.Issue
	for _, r := range rs {
		issues = append(issues, r.Check(profile, ctx)...)
	}
	return issues
}

// Package types provides type definitions for structured data used throughout the cv-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Grade is the letter grade derived from the overall score
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Readiness is the coarse submit-readiness classification
type Readiness string

const (
	ReadinessNotReady    Readiness = "not_ready"
	ReadinessNeedsWork   Readiness = "needs_work"
	ReadinessAlmostReady Readiness = "almost_ready"
	ReadinessReady       Readiness = "ready"
	ReadinessExcellent   Readiness = "excellent"
)

// Completeness records the core-field checks that cap the achievable score
type Completeness struct {
	FullName   bool    `json:"fullName"`
	Title      bool    `json:"title"`
	Email      bool    `json:"email"`
	Summary    bool    `json:"summary"`
	Experience bool    `json:"experience"`
	Skills     bool    `json:"skills"`
	Ratio      float64 `json:"ratio"`
	MaxScore   float64 `json:"maxScore"`
}

// LanguageAnalysis is the outcome of dominant-language detection over a profile's free text
type LanguageAnalysis struct {
	MainLanguage string         `json:"mainLanguage"` // ISO 639-1 code or "unknown"
	Confidence   float64        `json:"confidence"`   // 0-100
	Scores       map[string]int `json:"scores"`       // distinct indicator words per language
	IsMixed      bool           `json:"isMixed"`
}

// Audit is the immutable result of auditing one profile for one target country
type Audit struct {
	Score             int               `json:"score"`
	RawScore          float64           `json:"rawScore"`
	Grade             Grade             `json:"grade"`
	CriticalErrors    []Issue           `json:"criticalErrors"`
	Warnings          []Issue           `json:"warnings"`
	Improvements      []Issue           `json:"improvements"`
	Info              []Issue           `json:"info"`
	TotalIssues       int               `json:"totalIssues"`
	CategoryBreakdown map[IssueType]int `json:"categoryBreakdown"`
	TargetCountry     string            `json:"targetCountry"`
	EstimatedATSScore int               `json:"estimatedATSScore"`
	RawATSScore       float64           `json:"rawATSScore"`
	Readiness         Readiness         `json:"readiness"`
	Completeness      Completeness      `json:"completeness"`
	Language          LanguageAnalysis  `json:"language"`
	Timestamp         time.Time         `json:"timestamp"`
}

// Issues returns every issue of the audit in category order.
func (a *Audit) Issues() []Issue {
	all := make([]Issue, 0, a.TotalIssues)
	all = append(all, a.CriticalErrors...)
	all = append(all, a.Warnings...)
	all = append(all, a.Improvements...)
	all = append(all, a.Info...)
	return all
}

// ByCategory returns the issue list holding the given category.
func (a *Audit) ByCategory(c Category) []Issue {
	switch c {
	case CategoryCritical:
		return a.CriticalErrors
	case CategoryWarning:
		return a.Warnings
	case CategoryImprovement:
		return a.Improvements
	case CategoryInfo:
		return a.Info
	}
	return nil
}

// QuickCheckResult is the low-latency subset used for live editor feedback
type QuickCheckResult struct {
	Score         int     `json:"score"`
	CriticalCount int     `json:"criticalCount"`
	TopIssue      *string `json:"topIssue"`
}

// Package types provides type definitions for structured data used throughout the cv-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Category is the severity bucket of an issue
type Category string

const (
	CategoryCritical    Category = "critical"
	CategoryWarning     Category = "warning"
	CategoryImprovement Category = "improvement"
	CategoryInfo        Category = "info"
)

// Categories lists every category in report order.
var Categories = []Category{CategoryCritical, CategoryWarning, CategoryImprovement, CategoryInfo}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCritical, CategoryWarning, CategoryImprovement, CategoryInfo:
		return true
	}
	return false
}

// IssueType tags the rule family that produced an issue. It is a closed set:
// each value maps to exactly one bucket of the audit breakdown.
type IssueType string

const (
	TypeTypography IssueType = "typography"
	TypeContent    IssueType = "content"
	TypeRegional   IssueType = "regional"
	TypeChronology IssueType = "chronology"
	TypeContact    IssueType = "contact"
	TypeATS        IssueType = "ats"
	TypeIndustry   IssueType = "industry"
	TypeLanguage   IssueType = "language"
)

// IssueTypes lists every issue type in rule execution order.
var IssueTypes = []IssueType{
	TypeTypography,
	TypeContent,
	TypeRegional,
	TypeChronology,
	TypeContact,
	TypeATS,
	TypeIndustry,
	TypeLanguage,
}

// Label returns the human-readable bucket name.
func (t IssueType) Label() string {
	switch t {
	case TypeTypography:
		return "Typography"
	case TypeContent:
		return "Content"
	case TypeRegional:
		return "Regional compliance"
	case TypeChronology:
		return "Chronology"
	case TypeContact:
		return "Contact"
	case TypeATS:
		return "ATS compatibility"
	case TypeIndustry:
		return "Industry"
	case TypeLanguage:
		return "Language"
	}
	return string(t)
}

// issueNamespace seeds the name-based issue ids.
var issueNamespace = uuid.MustParse("6f1c2a4e-8d3b-4f7a-9c51-2e0b7d4a9f13")

// Issue is a single detected defect in a CV profile
type Issue struct {
	ID           string    `json:"id"`
	Category     Category  `json:"category"`
	Type         IssueType `json:"type"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	Field        string    `json:"field,omitempty"`
	Suggestion   string    `json:"suggestion,omitempty"`
	ScorePenalty float64   `json:"scorePenalty"`
}

// IssueID derives the deterministic id of an issue from its rule family, rule code and field path.
func IssueID(t IssueType, code, field string) string {
	return uuid.NewSHA1(issueNamespace, []byte(fmt.Sprintf("%s|%s|%s", t, code, field))).String()
}

// NewIssue builds an issue with its deterministic id filled in. Negative penalties are raised to zero.
func NewIssue(t IssueType, code string, category Category, penalty float64, field, message, suggestion string) Issue {
	if penalty < 0 {
		penalty = 0
	}
	return Issue{
		ID:           IssueID(t, code, field),
		Category:     category,
		Type:         t,
		Code:         code,
		Message:      message,
		Field:        field,
		Suggestion:   suggestion,
		ScorePenalty: penalty,
	}
}

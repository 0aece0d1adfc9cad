// Package types provides type definitions for structured data used throughout the cv-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CVProfile is the structured résumé submitted for audit. The engine never mutates it.
type CVProfile struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experiences  []Experience `json:"experiences"`
	Educations   []Education  `json:"educations"`
	Skills       []string     `json:"skills"`
	Languages    []Language   `json:"languages"`
}

// PersonalInfo holds identity, contact and regional-sensitive data
type PersonalInfo struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Title         string `json:"title"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
	GitHub        string `json:"github,omitempty"`
	Website       string `json:"website,omitempty"`
	Portfolio     string `json:"portfolio,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	DriverLicense string `json:"driverLicense,omitempty"`
	HasPhoto      bool   `json:"hasPhoto"`
}

// Experience represents one position held by the candidate
type Experience struct {
	Role      string   `json:"role"`
	Company   string   `json:"company"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate,omitempty"` // YYYY-MM
	EndDate   string   `json:"endDate,omitempty"`   // YYYY-MM, empty when current
	Dates     string   `json:"dates,omitempty"`     // Free-text period, e.g. "2019 - 2021"
	Current   bool     `json:"current,omitempty"`
	Tasks     []string `json:"tasks"`
}

// Education represents a degree or training entry
type Education struct {
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Year        string `json:"year"`
	Description string `json:"description,omitempty"`
}

// Language represents a spoken language and its proficiency level
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// FullName returns the first and last name joined by a space, trimmed.
func (p *PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// FreeText concatenates every free-text field of the profile, space separated, in document order.
func (p *CVProfile) FreeText() string {
	var sb strings.Builder
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}

	add(p.PersonalInfo.Title)
	add(p.Summary)
	for _, exp := range p.Experiences {
		add(exp.Role)
		add(exp.Company)
		for _, task := range exp.Tasks {
			add(task)
		}
	}
	for _, edu := range p.Educations {
		add(edu.Degree)
		add(edu.School)
		add(edu.Description)
	}
	for _, skill := range p.Skills {
		add(skill)
	}

	return norm.NFC.String(sb.String())
}

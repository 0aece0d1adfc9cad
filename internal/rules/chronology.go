package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jonathan/cv-auditor/internal/types"
)

const (
	minEducationYear     = 1950
	futureEducationYears = 5
)

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// Chronology checks that experiences are dated and that years are plausible.
type Chronology struct{}

func NewChronology() *Chronology { return &Chronology{} }

func (r *Chronology) Type() types.IssueType { return types.TypeChronology }

func (r *Chronology) Check(p *types.CVProfile, ctx Context) []types.Issue {
	var issues []types.Issue

	if len(p.Experiences) >= 2 {
		for _, exp := range p.Experiences {
			if isBlank(exp.StartDate) && isBlank(exp.Dates) {
				issues = append(issues, types.NewIssue(types.TypeChronology, "missing_dates", types.CategoryWarning, 5, "experiences",
					"Some experiences have no dates",
					"Give a start and end date for every position"))
				break
			}
		}
	}

	for i, exp := range p.Experiences {
		start, okStart := firstYear(exp.StartDate)
		end, okEnd := firstYear(exp.EndDate)
		if okStart && okEnd && end < start {
			issues = append(issues, types.NewIssue(types.TypeChronology, "inverted_dates", types.CategoryWarning, 5,
				fmt.Sprintf("experiences.%d", i),
				fmt.Sprintf("End date %d is before start date %d", end, start),
				"Check the order of the dates"))
		}
	}

	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}
	maxYear := now.Year() + futureEducationYears
	for i, edu := range p.Educations {
		year, ok := firstYear(edu.Year)
		if !ok || (year >= minEducationYear && year <= maxYear) {
			continue
		}
		issues = append(issues, types.NewIssue(types.TypeChronology, "education_year_out_of_range", types.CategoryCritical, 10,
			fmt.Sprintf("educations.%d.year", i),
			fmt.Sprintf("Graduation year %d is outside %d–%d", year, minEducationYear, maxYear),
			"Correct the graduation year"))
	}

	return issues
}

// firstYear extracts the first four-digit number of s.
func firstYear(s string) (int, bool) {
	m := yearPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	return year, err == nil
}

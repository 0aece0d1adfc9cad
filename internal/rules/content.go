package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-auditor/internal/types"
)

// Content thresholds
const (
	minSummaryLength = 50
	maxSummaryLength = 500
	minSkills        = 5
	maxSkills        = 20
	minTasks         = 2
)

// quantifiedPattern recognizes figures tied to a unit, currency or countable outcome
var quantifiedPattern = regexp.MustCompile(`(?i)\d+([.,]\d+)?\s*(%|€|\$|£|k\b|m\b|x\b|\+)|[€$£]\s?\d|` +
	`\b\d+\s+(users|clients|customers|projects|people|employees|members|servers|sites|applications|` +
	`utilisateurs|projets|personnes|collaborateurs|membres|serveurs|mitarbeiter|kunden|projekte)\b`)

// weakVerbs are phrasings that describe presence rather than impact
var weakVerbs = []string{
	"responsible for", "helped", "worked on", "participated in", "was involved in",
	"assisted", "handled", "in charge of",
	"chargé de", "participé à", "aidé à", "travaillé sur",
	"verantwortlich für", "mitgewirkt",
}

// ContentQuality checks the substance of the summary, experiences and skills.
type ContentQuality struct{}

func NewContentQuality() *ContentQuality { return &ContentQuality{} }

func (r *ContentQuality) Type() types.IssueType { return types.TypeContent }

func (r *ContentQuality) Check(p *types.CVProfile, _ Context) []types.Issue {
	var issues []types.Issue

	summary := strings.TrimSpace(p.Summary)
	switch n := utf8.RuneCountInString(summary); {
	case n == 0:
		issues = append(issues, types.NewIssue(types.TypeContent, "missing_summary", types.CategoryCritical, 10, "summary",
			"No professional summary",
			"Open with two or three sentences on who you are and what you bring"))
	case n < minSummaryLength:
		issues = append(issues, types.NewIssue(types.TypeContent, "short_summary", types.CategoryCritical, 10, "summary",
			fmt.Sprintf("Summary is too short (%d characters)", n),
			fmt.Sprintf("Write at least %d characters describing your profile", minSummaryLength)))
	case n > maxSummaryLength:
		issues = append(issues, types.NewIssue(types.TypeContent, "long_summary", types.CategoryWarning, 5, "summary",
			fmt.Sprintf("Summary is too long (%d characters)", n),
			fmt.Sprintf("Keep the summary under %d characters", maxSummaryLength)))
	}

	experienceText := experienceText(p)
	if len(p.Experiences) > 0 && !quantifiedPattern.MatchString(experienceText) {
		issues = append(issues, types.NewIssue(types.TypeContent, "no_quantified_achievements", types.CategoryCritical, 15, "experiences",
			"No quantified achievement in your experiences",
			"Back your results with figures: percentages, amounts, team or user counts"))
	}

	if found := findWeakVerbs(strings.ToLower(p.Summary + " " + experienceText)); len(found) > 0 {
		issues = append(issues, types.NewIssue(types.TypeContent, "weak_verbs", types.CategoryWarning, 5, "experiences",
			fmt.Sprintf("Weak phrasing found: %s", strings.Join(found, ", ")),
			"Start bullets with action verbs such as led, built, reduced or launched"))
	}

	switch n := countNonBlank(p.Skills); {
	case n < minSkills:
		issues = append(issues, types.NewIssue(types.TypeContent, "too_few_skills", types.CategoryWarning, 5, "skills",
			fmt.Sprintf("Only %d skills listed", n),
			fmt.Sprintf("List at least %d relevant skills", minSkills)))
	case n > maxSkills:
		issues = append(issues, types.NewIssue(types.TypeContent, "too_many_skills", types.CategoryWarning, 3, "skills",
			fmt.Sprintf("%d skills listed", n),
			fmt.Sprintf("Keep the %d most relevant skills", maxSkills)))
	}

	for i, exp := range p.Experiences {
		if n := countNonBlank(exp.Tasks); n < minTasks {
			issues = append(issues, types.NewIssue(types.TypeContent, "few_tasks", types.CategoryWarning, 5,
				fmt.Sprintf("experiences.%d.tasks", i),
				fmt.Sprintf("Experience %q describes only %d task(s)", strings.TrimSpace(exp.Role), n),
				fmt.Sprintf("Describe at least %d tasks or achievements per position", minTasks)))
		}
	}

	return issues
}

func experienceText(p *types.CVProfile) string {
	var parts []string
	for _, exp := range p.Experiences {
		parts = append(parts, exp.Role)
		parts = append(parts, exp.Tasks...)
	}
	return strings.Join(parts, "\n")
}

func findWeakVerbs(lower string) []string {
	var found []string
	for _, v := range weakVerbs {
		if strings.Contains(lower, v) {
			found = append(found, v)
		}
	}
	return found
}

func countNonBlank(values []string) int {
	n := 0
	for _, v := range values {
		if !isBlank(v) {
			n++
		}
	}
	return n
}

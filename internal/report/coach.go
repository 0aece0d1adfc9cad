// Package report renders audits as plain-text coaching reports.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/cv-auditor/internal/types"
)

// Category status markers
const (
	StatusOK      = "✅"
	StatusWarning = "⚠️"
	StatusFailing = "❌"
)

const defaultUserName = "candidate"

var readinessLabels = map[types.Readiness]string{
	types.ReadinessNotReady:    "Not ready to send",
	types.ReadinessNeedsWork:   "Needs work",
	types.ReadinessAlmostReady: "Almost ready",
	types.ReadinessReady:       "Ready to send",
	types.ReadinessExcellent:   "Excellent",
}

// StatusFor maps the number of issues of a category to its marker.
func StatusFor(count int) string {
	switch {
	case count == 0:
		return StatusOK
	case count <= 2:
		return StatusWarning
	default:
		return StatusFailing
	}
}

// GenerateCoachReport formats audit for userName. The output depends only on its inputs,
// so rendering the same audit twice yields identical text.
func GenerateCoachReport(audit *types.Audit, userName string) string {
	if audit == nil {
		return ""
	}
	name := strings.TrimSpace(userName)
	if name == "" {
		name = defaultUserName
	}

	var sb strings.Builder

	title := fmt.Sprintf("CV AUDIT REPORT FOR %s", strings.ToUpper(name))
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len([]rune(title))) + "\n\n")

	sb.WriteString(fmt.Sprintf("Target market: %s\n", audit.TargetCountry))
	sb.WriteString(fmt.Sprintf("Score:         %d/100 (grade %s)\n", audit.Score, audit.Grade))
	sb.WriteString(fmt.Sprintf("ATS score:     %d/100\n", audit.EstimatedATSScore))
	sb.WriteString(fmt.Sprintf("Readiness:     %s\n", readinessLabel(audit.Readiness)))
	sb.WriteString(fmt.Sprintf("Issues:        %d (%d critical, %d warnings, %d improvements, %d info)\n\n",
		audit.TotalIssues, len(audit.CriticalErrors), len(audit.Warnings), len(audit.Improvements), len(audit.Info)))

	writeCategoryTable(&sb, audit)
	writeCriticalErrors(&sb, audit.CriticalErrors)
	writeBullets(&sb, "WARNINGS", audit.Warnings)
	writeBullets(&sb, "IMPROVEMENTS", audit.Improvements)
	writeBullets(&sb, "GOOD TO KNOW", audit.Info)

	sb.WriteString(closingLine(audit, name))
	return sb.String()
}

func readinessLabel(r types.Readiness) string {
	if label, ok := readinessLabels[r]; ok {
		return label
	}
	return string(r)
}

// writeCategoryTable walks the fixed type order; map iteration order would not be stable.
func writeCategoryTable(sb *strings.Builder, audit *types.Audit) {
	sb.WriteString("CATEGORIES\n")
	sb.WriteString(fmt.Sprintf("  %-20s %6s  %s\n", "Category", "Issues", "Status"))
	for _, t := range types.IssueTypes {
		count := audit.CategoryBreakdown[t]
		sb.WriteString(fmt.Sprintf("  %-20s %6d  %s\n", t.Label(), count, StatusFor(count)))
	}
	sb.WriteString("\n")
}

func writeCriticalErrors(sb *strings.Builder, issues []types.Issue) {
	if len(issues) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("CRITICAL ERRORS (%d)\n", len(issues)))
	for i, is := range issues {
		sb.WriteString(fmt.Sprintf("\n[%d] %s\n", i+1, is.Message))
		if is.Field != "" {
			sb.WriteString(fmt.Sprintf("    Field:   %s\n", is.Field))
		}
		if is.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("    Fix:     %s\n", is.Suggestion))
		}
		sb.WriteString(fmt.Sprintf("    Penalty: -%s points\n", formatPenalty(is.ScorePenalty)))
	}
	sb.WriteString("\n")
}

func writeBullets(sb *strings.Builder, heading string, issues []types.Issue) {
	if len(issues) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d)\n", heading, len(issues)))
	for _, is := range issues {
		sb.WriteString(fmt.Sprintf("  • %s", is.Message))
		if is.Field != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", is.Field))
		}
		sb.WriteString("\n")
		if is.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("    → %s\n", is.Suggestion))
		}
	}
	sb.WriteString("\n")
}

func closingLine(audit *types.Audit, name string) string {
	switch {
	case len(audit.CriticalErrors) > 0:
		return fmt.Sprintf("%s, fix the %d critical error(s) first: each one also lowers every other point you earn.\n",
			name, len(audit.CriticalErrors))
	case audit.Score >= 90:
		return fmt.Sprintf("Well done %s, your CV is ready to send.\n", name)
	default:
		return fmt.Sprintf("%s, work through the warnings above to raise your score.\n", name)
	}
}

func formatPenalty(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

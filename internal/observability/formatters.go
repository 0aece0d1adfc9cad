// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes; %-*s counts bytes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintAudit outputs the scores and the most important issues of an audit.
func (p *Printer) PrintAudit(audit *types.Audit) {
	if audit == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Country:   %s\n", audit.TargetCountry))
	sb.WriteString(fmt.Sprintf("Score:     %d/100 (%s)\n", audit.Score, audit.Grade))
	sb.WriteString(fmt.Sprintf("ATS:       %d/100\n", audit.EstimatedATSScore))
	sb.WriteString(fmt.Sprintf("Readiness: %s\n", audit.Readiness))
	sb.WriteString(fmt.Sprintf("Complete:  %.0f%% (cap %.0f)\n", audit.Completeness.Ratio*100, audit.Completeness.MaxScore))
	sb.WriteString("\n")

	if len(audit.CriticalErrors) > 0 {
		sb.WriteString(fmt.Sprintf("Critical (%d):\n", len(audit.CriticalErrors)))
		writeIssues(&sb, audit.CriticalErrors)
		sb.WriteString("\n")
	}
	if len(audit.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(audit.Warnings)))
		writeIssues(&sb, audit.Warnings)
	}

	p.printBox("CV AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeIssues(sb *strings.Builder, issues []types.Issue) {
	count := min(len(issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", issues[i].Message))
	}
	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(issues)-maxItemsToShow))
	}
}

// PrintQuickCheck outputs a quick-check result.
func (p *Printer) PrintQuickCheck(result types.QuickCheckResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Critical: %d", result.CriticalCount))
	if result.TopIssue != nil {
		sb.WriteString(fmt.Sprintf("\nTop:      %s", *result.TopIssue))
	}
	p.printBox("QUICK CHECK", sb.String())
}

// PrintLanguageAnalysis outputs the detected language and the indicator counts.
func (p *Printer) PrintLanguageAnalysis(analysis types.LanguageAnalysis) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Language:   %s\n", analysis.MainLanguage))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", analysis.Confidence))
	if analysis.IsMixed {
		sb.WriteString("Mixed:      yes\n")
	}

	codes := make([]string, 0, len(analysis.Scores))
	for code := range analysis.Scores {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	if len(codes) > 0 {
		sb.WriteString("\nIndicator words:\n")
		for _, code := range codes {
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", code, analysis.Scores[code]))
		}
	}

	p.printBox("LANGUAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCountries outputs the country table, one line per market.
func (p *Printer) PrintCountries(rules []country.Rule) {
	if len(rules) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range rules {
		photo := "no photo"
		switch {
		case r.Photo.Required:
			photo = "photo required"
		case r.Photo.Recommended:
			photo = "photo recommended"
		case r.Photo.Allowed:
			photo = "photo allowed"
		}
		sb.WriteString(fmt.Sprintf("%s  %-14s %dp  %s\n", r.Code, r.Name, r.Format.MaxPages, photo))
	}

	p.printBox(fmt.Sprintf("COUNTRIES (%d)", len(rules)), strings.TrimSuffix(sb.String(), "\n"))
}

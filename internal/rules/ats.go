package rules

import "github.com/jonathan/cv-auditor/internal/types"

// ATSCompatibility flags content that applicant tracking systems parse badly.
type ATSCompatibility struct{}

func NewATSCompatibility() *ATSCompatibility { return &ATSCompatibility{} }

func (r *ATSCompatibility) Type() types.IssueType { return types.TypeATS }

func (r *ATSCompatibility) Check(p *types.CVProfile, _ Context) []types.Issue {
	fields := collectTextFields(p)

	var issues []types.Issue
	issues = append(issues, decorativeGlyphIssue(types.TypeATS, fields)...)
	issues = append(issues, tableLayoutIssue(types.TypeATS, fields)...)
	issues = append(issues, types.NewIssue(types.TypeATS, "ats_reminder", types.CategoryInfo, 0, "",
		"Export as a text-based PDF with standard section headings so applicant tracking systems can read it", ""))
	return issues
}

package rules

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/types"
)

// Page estimation: characters that fit on one page, and sections per page
const (
	charsPerPage    = 2500
	sectionsPerPage = 6
)

// consentKeywords detect a data-processing consent clause already present in the text
var consentKeywords = []string{
	"gdpr", "rgpd", "rodo", "dati personali", "données personnelles", "danych osobowych",
	"consent", "consentement", "autorizzo", "wyrażam zgodę",
}

// RegionalCompliance checks the profile against the target market's legal and cultural rules.
type RegionalCompliance struct{}

func NewRegionalCompliance() *RegionalCompliance { return &RegionalCompliance{} }

func (r *RegionalCompliance) Type() types.IssueType { return types.TypeRegional }

func (r *RegionalCompliance) Check(p *types.CVProfile, ctx Context) []types.Issue {
	rule := ctx.Country
	info := p.PersonalInfo
	var issues []types.Issue

	switch {
	case info.HasPhoto && !rule.Photo.Allowed:
		issues = append(issues, types.NewIssue(types.TypeRegional, "photo_forbidden", types.CategoryCritical, 20, "personalInfo.hasPhoto",
			fmt.Sprintf("Photos are not accepted on CVs in %s", rule.Name),
			"Remove the photo to avoid automatic rejection"))
	case !info.HasPhoto && rule.Photo.Required:
		issues = append(issues, types.NewIssue(types.TypeRegional, "photo_missing", types.CategoryCritical, 15, "personalInfo.hasPhoto",
			fmt.Sprintf("A photo is expected on CVs in %s", rule.Name),
			"Add a recent professional headshot"))
	case !info.HasPhoto && rule.Photo.Recommended:
		issues = append(issues, types.NewIssue(types.TypeRegional, "photo_recommended", types.CategoryInfo, 0, "personalInfo.hasPhoto",
			fmt.Sprintf("Most CVs in %s include a photo", rule.Name),
			"Consider adding a professional headshot"))
	}

	if !isBlank(info.BirthDate) && rule.PersonalInfo.BirthDate == country.Forbidden {
		issues = append(issues, types.NewIssue(types.TypeRegional, "birth_date_forbidden", types.CategoryCritical, 15, "personalInfo.birthDate",
			fmt.Sprintf("Birth date must not appear on CVs in %s", rule.Name),
			"Remove your date of birth and age"))
	}
	if !isBlank(info.MaritalStatus) && rule.PersonalInfo.MaritalStatus == country.Forbidden {
		issues = append(issues, types.NewIssue(types.TypeRegional, "marital_status_forbidden", types.CategoryWarning, 8, "personalInfo.maritalStatus",
			fmt.Sprintf("Marital status is not disclosed on CVs in %s", rule.Name),
			"Remove your marital status"))
	}
	if !isBlank(info.Nationality) && rule.PersonalInfo.Nationality == country.Forbidden {
		issues = append(issues, types.NewIssue(types.TypeRegional, "nationality_discouraged", types.CategoryWarning, 8, "personalInfo.nationality",
			fmt.Sprintf("Nationality is discouraged on CVs in %s", rule.Name),
			"Mention work authorization instead of nationality if relevant"))
	}

	if pages := EstimatePages(p); rule.Format.MaxPages > 0 && pages > rule.Format.MaxPages {
		issues = append(issues, types.NewIssue(types.TypeRegional, "too_many_pages", types.CategoryCritical, 10, "",
			fmt.Sprintf("Estimated length is %d pages; %s expects at most %d", pages, rule.Name, rule.Format.MaxPages),
			"Trim older experiences and shorten descriptions"))
	}

	if rule.Features.Signature {
		issues = append(issues, types.NewIssue(types.TypeRegional, "signature_expected", types.CategoryInfo, 0, "",
			fmt.Sprintf("CVs in %s are traditionally dated and signed", rule.Name),
			"Add the place, date and your signature at the bottom"))
	}
	if rule.Features.VisaStatus {
		issues = append(issues, types.NewIssue(types.TypeRegional, "visa_status", types.CategoryInfo, 0, "",
			fmt.Sprintf("Employers in %s look for visa or residency status", rule.Name),
			"State your visa status and availability"))
	}
	if rule.Features.LegalFooter != "" && !hasConsentClause(p) {
		issues = append(issues, types.NewIssue(types.TypeRegional, "legal_footer", types.CategoryInfo, 0, "",
			fmt.Sprintf("CVs in %s usually end with a data-processing consent clause", rule.Name),
			rule.Features.LegalFooter))
	}

	return issues
}

// EstimatePages approximates the rendered length from text volume and section count.
func EstimatePages(p *types.CVProfile) int {
	byText := float64(utf8.RuneCountInString(p.FreeText())) / charsPerPage
	bySections := float64(len(p.Experiences)+len(p.Educations)) / sectionsPerPage
	return int(math.Ceil(math.Max(byText, bySections)))
}

func hasConsentClause(p *types.CVProfile) bool {
	text := strings.ToLower(p.FreeText())
	for _, k := range consentKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

package rules

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-auditor/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// unprofessionalFragments match anywhere in the local part
var unprofessionalFragments = []string{
	"sexy", "babe", "bebe", "cutie", "chouchou", "princess", "princesse", "coquin",
	"killer", "crazy", "xxx", "666", "420", "lover", "darling", "doudou", "gamer",
}

// unprofessionalTokens only match whole tokens of the local part
var unprofessionalTokens = []string{"hot", "lol", "kiss", "bg", "cool", "love", "69"}

var professionalNetworks = []string{"linkedin", "xing", "viadeo"}

// Contact checks that a recruiter can identify and reach the candidate.
type Contact struct{}

func NewContact() *Contact { return &Contact{} }

func (r *Contact) Type() types.IssueType { return types.TypeContact }

func (r *Contact) Check(p *types.CVProfile, _ Context) []types.Issue {
	info := p.PersonalInfo
	var issues []types.Issue

	switch {
	case isBlank(info.FirstName):
		issues = append(issues, missingName("personalInfo.firstName"))
	case isBlank(info.LastName):
		issues = append(issues, missingName("personalInfo.lastName"))
	}

	if isBlank(info.Title) {
		issues = append(issues, types.NewIssue(types.TypeContact, "missing_title", types.CategoryWarning, 8, "personalInfo.title",
			"No job title under your name",
			"Add the title of the position you are targeting"))
	}

	email := strings.TrimSpace(info.Email)
	if email == "" {
		issues = append(issues, types.NewIssue(types.TypeContact, "missing_email", types.CategoryCritical, 20, "personalInfo.email",
			"No email address",
			"Add a professional email address"))
	} else {
		if isUnprofessionalEmail(email) {
			issues = append(issues, types.NewIssue(types.TypeContact, "unprofessional_email", types.CategoryCritical, 15, "personalInfo.email",
				"Email address looks unprofessional",
				"Use an address based on your first and last name"))
		}
		if !emailPattern.MatchString(email) {
			issues = append(issues, types.NewIssue(types.TypeContact, "invalid_email_format", types.CategoryCritical, 15, "personalInfo.email",
				"Email address is malformed",
				"Check the address, for example firstname.lastname@domain.com"))
		}
	}

	if isBlank(info.Phone) {
		issues = append(issues, types.NewIssue(types.TypeContact, "missing_phone", types.CategoryWarning, 5, "personalInfo.phone",
			"No phone number",
			"Add a phone number with the country code"))
	}

	if !hasProfessionalLink(info) {
		issues = append(issues, types.NewIssue(types.TypeContact, "missing_professional_link", types.CategoryWarning, 5, "personalInfo.linkedin",
			"No professional network profile",
			"Add your LinkedIn profile URL"))
	}

	return issues
}

func missingName(field string) types.Issue {
	return types.NewIssue(types.TypeContact, "missing_name", types.CategoryCritical, 25, field,
		"First name or last name is missing",
		"Put your full name at the top of the CV")
}

func isUnprofessionalEmail(email string) bool {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	for _, f := range unprofessionalFragments {
		if strings.Contains(local, f) {
			return true
		}
	}
	tokens := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for _, tok := range tokens {
		for _, bad := range unprofessionalTokens {
			if tok == bad {
				return true
			}
		}
	}
	return false
}

func hasProfessionalLink(info types.PersonalInfo) bool {
	if !isBlank(info.LinkedIn) {
		return true
	}
	website := strings.ToLower(info.Website)
	for _, n := range professionalNetworks {
		if strings.Contains(website, n) {
			return true
		}
	}
	return false
}

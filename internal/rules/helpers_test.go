package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/language"
	"github.com/jonathan/cv-auditor/internal/skills"
	"github.com/jonathan/cv-auditor/internal/textcheck"
	"github.com/jonathan/cv-auditor/internal/types"
)

// cleanProfile returns a French developer profile that triggers no warning or critical issue.
func cleanProfile() *types.CVProfile {
	return &types.CVProfile{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jean",
			LastName:  "Dupont",
			Title:     "Développeur Backend",
			Email:     "jean.dupont@example.com",
			Phone:     "+33 6 12 34 56 78",
			LinkedIn:  "https://linkedin.com/in/jeandupont",
			GitHub:    "https://github.com/jdupont",
		},
		Summary: "Développeur backend avec huit ans d'expérience dans la conception de services distribués et la gestion d'équipes.",
		Experiences: []types.Experience{
			{
				Role:      "Développeur Backend",
				Company:   "Acme",
				StartDate: "2019",
				EndDate:   "2024",
				Tasks: []string{
					"Réduit la latence des services de 40% sur la plateforme de paiement",
					"Conçu une architecture de microservices pour 2 millions d'utilisateurs",
				},
			},
		},
		Educations: []types.Education{
			{Degree: "Master Informatique", School: "Université de Lyon", Year: "2015"},
		},
		Skills:    []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "Linux"},
		Languages: []types.Language{{Name: "Français", Level: "native"}, {Name: "English", Level: "C1"}},
	}
}

func contextFor(t *testing.T, code string) Context {
	t.Helper()
	rule, err := country.Default().Lookup(code)
	require.NoError(t, err)
	return Context{
		CountryCode: code,
		Country:     rule,
		Now:         time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTypography() *Typography {
	g := textcheck.New()
	return NewTypography(g, skills.NewValidator(g))
}

func newLanguageQuality() *LanguageQuality {
	return NewLanguageQuality(language.NewIdentifier(country.Default()))
}

// codes lists the issue codes in emission order.
func codes(issues []types.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Code)
	}
	return out
}

func findIssue(issues []types.Issue, code string) (types.Issue, bool) {
	for _, is := range issues {
		if is.Code == code {
			return is, true
		}
	}
	return types.Issue{}, false
}

// scoring returns the issues that are not informational.
func scoring(issues []types.Issue) []types.Issue {
	var out []types.Issue
	for _, is := range issues {
		if is.Category != types.CategoryInfo {
			out = append(out, is)
		}
	}
	return out
}

package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-auditor/internal/types"
)

func TestRegionalCompliance_Photo(t *testing.T) {
	p := cleanProfile()
	p.PersonalInfo.HasPhoto = true
	is, ok := findIssue(NewRegionalCompliance().Check(p, contextFor(t, "US")), "photo_forbidden")
	require.True(t, ok)
	assert.Equal(t, types.CategoryCritical, is.Category)
	assert.Equal(t, 20.0, is.ScorePenalty)

	p.PersonalInfo.HasPhoto = false
	is, ok = findIssue(NewRegionalCompliance().Check(p, contextFor(t, "JP")), "photo_missing")
	require.True(t, ok)
	assert.Equal(t, 15.0, is.ScorePenalty)

	is, ok = findIssue(NewRegionalCompliance().Check(p, contextFor(t, "DE")), "photo_recommended")
	require.True(t, ok)
	assert.Equal(t, types.CategoryInfo, is.Category)
	assert.Zero(t, is.ScorePenalty)

	assert.Empty(t, NewRegionalCompliance().Check(p, contextFor(t, "FR")))
}

func TestRegionalCompliance_PersonalData(t *testing.T) {
	p := cleanProfile()
	p.PersonalInfo.BirthDate = "1990-04-12"
	p.PersonalInfo.MaritalStatus = "Married"
	p.PersonalInfo.Nationality = "French"

	issues := NewRegionalCompliance().Check(p, contextFor(t, "GB"))
	birth, ok := findIssue(issues, "birth_date_forbidden")
	require.True(t, ok)
	assert.Equal(t, 15.0, birth.ScorePenalty)
	assert.Equal(t, "personalInfo.birthDate", birth.Field)

	marital, ok := findIssue(issues, "marital_status_forbidden")
	require.True(t, ok)
	assert.Equal(t, 8.0, marital.ScorePenalty)

	nationality, ok := findIssue(issues, "nationality_discouraged")
	require.True(t, ok)
	assert.Equal(t, types.CategoryWarning, nationality.Category)
	assert.Equal(t, 8.0, nationality.ScorePenalty)

	assert.Empty(t, scoring(NewRegionalCompliance().Check(p, contextFor(t, "FR"))))
}

func TestRegionalCompliance_PageCount(t *testing.T) {
	p := cleanProfile()
	for i := 0; i < 7; i++ {
		p.Experiences = append(p.Experiences, p.Experiences[0])
	}
	// 8 experiences + 1 education span two pages
	assert.Equal(t, 2, EstimatePages(p))

	is, ok := findIssue(NewRegionalCompliance().Check(p, contextFor(t, "US")), "too_many_pages")
	require.True(t, ok)
	assert.Equal(t, types.CategoryCritical, is.Category)
	assert.Equal(t, 10.0, is.ScorePenalty)

	_, ok = findIssue(NewRegionalCompliance().Check(p, contextFor(t, "FR")), "too_many_pages")
	assert.False(t, ok)
}

func TestEstimatePages_TextLength(t *testing.T) {
	p := &types.CVProfile{Summary: strings.Repeat("a", 5001)}
	assert.Equal(t, 3, EstimatePages(p))
	assert.Equal(t, 0, EstimatePages(&types.CVProfile{}))
}

func TestRegionalCompliance_Features(t *testing.T) {
	p := cleanProfile()
	issues := NewRegionalCompliance().Check(p, contextFor(t, "DE"))
	_, ok := findIssue(issues, "signature_expected")
	assert.True(t, ok)

	issues = NewRegionalCompliance().Check(p, contextFor(t, "AE"))
	_, ok = findIssue(issues, "visa_status")
	assert.True(t, ok)

	is, ok := findIssue(NewRegionalCompliance().Check(p, contextFor(t, "IT")), "legal_footer")
	require.True(t, ok)
	assert.Contains(t, is.Suggestion, "GDPR")

	p.Summary += " Autorizzo il trattamento dei dati personali."
	_, ok = findIssue(NewRegionalCompliance().Check(p, contextFor(t, "IT")), "legal_footer")
	assert.False(t, ok)
}

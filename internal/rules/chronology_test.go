package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-auditor/internal/types"
)

func TestChronology_MissingDates(t *testing.T) {
	p := cleanProfile()
	p.Experiences = append(p.Experiences, types.Experience{Role: "Stagiaire"}, types.Experience{Role: "Freelance"})

	issues := NewChronology().Check(p, contextFor(t, "FR"))
	require.Len(t, issues, 1)
	assert.Equal(t, "missing_dates", issues[0].Code)
	assert.Equal(t, types.CategoryWarning, issues[0].Category)
	assert.Equal(t, 5.0, issues[0].ScorePenalty)
}

func TestChronology_FreeTextDatesCount(t *testing.T) {
	p := cleanProfile()
	p.Experiences = append(p.Experiences, types.Experience{Role: "Stagiaire", Dates: "été 2014"})
	assert.Empty(t, NewChronology().Check(p, contextFor(t, "FR")))
}

func TestChronology_SingleUndatedExperienceAccepted(t *testing.T) {
	p := cleanProfile()
	p.Experiences[0].StartDate = ""
	p.Experiences[0].EndDate = ""
	assert.Empty(t, NewChronology().Check(p, contextFor(t, "FR")))
}

func TestChronology_EducationYearRange(t *testing.T) {
	p := cleanProfile()
	p.Educations = []types.Education{
		{Degree: "Bac", Year: "1949"},
		{Degree: "Licence", Year: "1950"},
		{Degree: "Master", Year: "2031"},
		{Degree: "Doctorat", Year: "2032"},
		{Degree: "MBA", Year: "en cours"},
	}

	var fields []string
	for _, is := range NewChronology().Check(p, contextFor(t, "FR")) {
		require.Equal(t, "education_year_out_of_range", is.Code)
		assert.Equal(t, types.CategoryCritical, is.Category)
		assert.Equal(t, 10.0, is.ScorePenalty)
		fields = append(fields, is.Field)
	}
	assert.Equal(t, []string{"educations.0.year", "educations.3.year"}, fields)
}

func TestChronology_InvertedDates(t *testing.T) {
	p := cleanProfile()
	p.Experiences[0].StartDate = "03/2022"
	p.Experiences[0].EndDate = "06/2020"

	is, ok := findIssue(NewChronology().Check(p, contextFor(t, "FR")), "inverted_dates")
	require.True(t, ok)
	assert.Equal(t, "experiences.0", is.Field)
	assert.Equal(t, 5.0, is.ScorePenalty)
}

func TestFirstYear(t *testing.T) {
	year, ok := firstYear("Sept. 2018 - 2020")
	assert.True(t, ok)
	assert.Equal(t, 2018, year)

	_, ok = firstYear("depuis 12 mois")
	assert.False(t, ok)
}

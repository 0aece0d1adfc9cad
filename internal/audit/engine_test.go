package audit

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/types"
)

var fixedNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func newEngine() *Engine {
	return NewDefault(WithClock(func() time.Time { return fixedNow }))
}

func completeProfile() *types.CVProfile {
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
		Educations: []types.Education{{Degree: "Master Informatique", School: "Université de Lyon", Year: "2015"}},
		Skills:     []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "Linux"},
	}
}

// endToEndProfile has a name and a malformed email and nothing else.
func endToEndProfile() *types.CVProfile {
	return &types.CVProfile{
		PersonalInfo: types.PersonalInfo{FirstName: "Jean", LastName: "Dupont", Email: "jean@x"},
	}
}

func sampleProfiles() []*types.CVProfile {
	noisy := completeProfile()
	noisy.PersonalInfo.FirstName = "qwerty"
	noisy.PersonalInfo.HasPhoto = true
	noisy.PersonalInfo.BirthDate = "1990"
	noisy.Summary = "★★ GREAT SENIOR EXPERT!!! asdfgh"
	noisy.Skills = []string{"zzzzz", "xqzkj"}
	noisy.Educations = append(noisy.Educations, types.Education{Year: "1890"})

	return []*types.CVProfile{
		{},
		endToEndProfile(),
		completeProfile(),
		noisy,
	}
}

func TestAnalyze_CompleteProfile(t *testing.T) {
	audit, err := newEngine().Analyze(completeProfile(), "FR")
	require.NoError(t, err)

	assert.Empty(t, audit.CriticalErrors)
	assert.Empty(t, audit.Warnings)
	assert.Equal(t, 100, audit.Score)
	assert.Equal(t, types.GradeAPlus, audit.Grade)
	assert.Equal(t, types.ReadinessExcellent, audit.Readiness)
	assert.Equal(t, 100, audit.EstimatedATSScore)
	assert.Equal(t, 1.0, audit.Completeness.Ratio)
	assert.Equal(t, "fr", audit.Language.MainLanguage)
	assert.Equal(t, "FR", audit.TargetCountry)
	assert.Equal(t, fixedNow, audit.Timestamp)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	audit, err := newEngine().Analyze(endToEndProfile(), "FR")
	require.NoError(t, err)

	assert.Equal(t, 25.0, audit.Completeness.MaxScore)
	assert.LessOrEqual(t, audit.Completeness.Ratio, 2.0/6)

	var got []string
	for _, is := range audit.Issues() {
		if is.Category != types.CategoryInfo {
			got = append(got, is.Code)
		}
	}
	assert.ElementsMatch(t, []string{
		"missing_summary", "too_few_skills", "missing_title", "invalid_email_format",
		"missing_phone", "missing_professional_link",
	}, got)

	assert.Equal(t, 0, audit.Score)
	assert.Equal(t, 0.0, audit.RawScore)
	assert.Equal(t, types.GradeF, audit.Grade)
	// two critical issues: needs_work under the readiness ladder
	assert.Len(t, audit.CriticalErrors, 2)
	assert.Equal(t, types.ReadinessNeedsWork, audit.Readiness)
	assert.Equal(t, 100, audit.EstimatedATSScore)

	assert.Equal(t, 1, audit.CategoryBreakdown[types.TypeTypography])
	assert.Equal(t, 2, audit.CategoryBreakdown[types.TypeContent])
	assert.Equal(t, 4, audit.CategoryBreakdown[types.TypeContact])
	assert.Equal(t, 1, audit.CategoryBreakdown[types.TypeATS])
	assert.Equal(t, 0, audit.CategoryBreakdown[types.TypeLanguage])
}

func TestAnalyze_Bounds(t *testing.T) {
	e := newEngine()
	for i, p := range sampleProfiles() {
		for _, code := range e.Countries().Codes() {
			audit, err := e.Analyze(p, code)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, audit.Score, 0, "profile %d %s", i, code)
			assert.LessOrEqual(t, audit.Score, 100, "profile %d %s", i, code)
			assert.GreaterOrEqual(t, audit.EstimatedATSScore, 0)
			assert.LessOrEqual(t, audit.EstimatedATSScore, 100)
		}
	}
}

func TestAnalyze_Partition(t *testing.T) {
	for i, p := range sampleProfiles() {
		audit, err := newEngine().Analyze(p, "US")
		require.NoError(t, err)

		assert.Equal(t, audit.TotalIssues,
			len(audit.CriticalErrors)+len(audit.Warnings)+len(audit.Improvements)+len(audit.Info), "profile %d", i)
		for _, c := range types.Categories {
			for _, is := range audit.ByCategory(c) {
				assert.Equal(t, c, is.Category)
			}
		}

		breakdown := 0
		assert.Len(t, audit.CategoryBreakdown, len(types.IssueTypes))
		for _, n := range audit.CategoryBreakdown {
			breakdown += n
		}
		assert.Equal(t, audit.TotalIssues, breakdown)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := newEngine()
	for _, p := range sampleProfiles() {
		first, err := e.Analyze(p, "DE")
		require.NoError(t, err)
		second, err := e.Analyze(p, "DE")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestAnalyze_UniqueIssueIDs(t *testing.T) {
	for _, p := range sampleProfiles() {
		audit, err := newEngine().Analyze(p, "JP")
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, is := range audit.Issues() {
			assert.False(t, seen[is.ID], "duplicate %s/%s", is.Code, is.Field)
			seen[is.ID] = true
		}
	}
}

func TestAnalyze_EmptyProfileCannotExceedCap(t *testing.T) {
	audit, err := newEngine().Analyze(&types.CVProfile{}, "FR")
	require.NoError(t, err)
	assert.Zero(t, audit.Completeness.Ratio)
	assert.LessOrEqual(t, audit.Score, 25)
}

func TestAnalyze_NilProfile(t *testing.T) {
	audit, err := newEngine().Analyze(nil, "")
	require.NoError(t, err)
	assert.Equal(t, country.DefaultCode, audit.TargetCountry)
	assert.NotZero(t, audit.TotalIssues)
}

func TestAnalyze_CountryCodeNormalized(t *testing.T) {
	audit, err := newEngine().Analyze(completeProfile(), " de ")
	require.NoError(t, err)
	assert.Equal(t, "DE", audit.TargetCountry)
}

func TestAnalyze_UnknownCountry(t *testing.T) {
	_, err := newEngine().Analyze(completeProfile(), "XX")
	require.Error(t, err)
	var unknown *country.UnknownCountryError
	assert.True(t, errors.As(err, &unknown))

	_, err = newEngine().QuickCheck(completeProfile(), "XX")
	assert.True(t, errors.As(err, &unknown))
}

func TestAnalyze_MixedLanguage(t *testing.T) {
	p := completeProfile()
	p.Summary = "Le chef de projet est avec nous pour la gestion des équipes. " +
		"The team and the project with management for the development of our skills."

	audit, err := newEngine().Analyze(p, "FR")
	require.NoError(t, err)
	assert.True(t, audit.Language.IsMixed)

	var mixed *types.Issue
	for i := range audit.CriticalErrors {
		if audit.CriticalErrors[i].Code == "mixed_language" {
			mixed = &audit.CriticalErrors[i]
		}
	}
	require.NotNil(t, mixed)
	assert.Equal(t, 25.0, mixed.ScorePenalty)
	assert.Equal(t, types.TypeLanguage, mixed.Type)
}

func TestAnalyze_AddingCriticalNeverRaisesScore(t *testing.T) {
	e := newEngine()
	for _, p := range sampleProfiles() {
		before, err := e.Analyze(p, "FR")
		require.NoError(t, err)

		worse := *p
		worse.PersonalInfo.Email = ""
		after, err := e.Analyze(&worse, "FR")
		require.NoError(t, err)
		assert.LessOrEqual(t, after.RawScore, before.RawScore)
	}
}

func TestComputeScore_Monotonic(t *testing.T) {
	issues := []types.Issue{
		types.NewIssue(types.TypeContact, "missing_phone", types.CategoryWarning, 5, "", "", ""),
	}
	for i := 0; i < 8; i++ {
		before := computeScore(100, issues)
		issues = append(issues, types.NewIssue(types.TypeContent, fmt.Sprintf("critical_%d", i),
			types.CategoryCritical, float64(i), "", "", ""))
		assert.LessOrEqual(t, computeScore(100, issues), before)
	}
}

func TestCriticalMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, CriticalMultiplier(0))
	assert.InDelta(t, 0.85, CriticalMultiplier(1), 1e-9)
	assert.InDelta(t, 0.4, CriticalMultiplier(4), 1e-9)
	for n := 5; n < 20; n++ {
		assert.Equal(t, 0.3, CriticalMultiplier(n))
	}
}

func TestMaxScore(t *testing.T) {
	assert.Equal(t, 100.0, MaxScore(1))
	assert.Equal(t, 80.0, MaxScore(5.0/6))
	assert.Equal(t, 50.0, MaxScore(3.0/6))
	assert.Equal(t, 50.0, MaxScore(4.0/6))
	assert.Equal(t, 25.0, MaxScore(2.0/6))
	assert.Equal(t, 25.0, MaxScore(0))
}

func TestComputeATSScore_IgnoresOtherTypes(t *testing.T) {
	issues := []types.Issue{
		types.NewIssue(types.TypeATS, "table_layout", types.CategoryWarning, 5, "", "", ""),
		types.NewIssue(types.TypeTypography, "double_spaces", types.CategoryWarning, 3, "", "", ""),
		types.NewIssue(types.TypeContact, "missing_email", types.CategoryCritical, 20, "", "", ""),
	}
	assert.Equal(t, 88.0, computeATSScore(issues))

	var many []types.Issue
	for i := 0; i < 20; i++ {
		many = append(many, types.NewIssue(types.TypeATS, fmt.Sprintf("x%d", i), types.CategoryWarning, 5, "", "", ""))
	}
	assert.Equal(t, 0.0, computeATSScore(many))
}

func TestGradeFor(t *testing.T) {
	tests := map[int]types.Grade{
		100: types.GradeAPlus, 95: types.GradeAPlus, 94: types.GradeA, 85: types.GradeA,
		84: types.GradeB, 75: types.GradeB, 74: types.GradeC, 60: types.GradeC,
		59: types.GradeD, 40: types.GradeD, 39: types.GradeF, 0: types.GradeF,
	}
	for score, want := range tests {
		assert.Equal(t, want, GradeFor(score), "score %d", score)
	}
}

func TestReadinessFor(t *testing.T) {
	assert.Equal(t, types.ReadinessNotReady, ReadinessFor(4, 100))
	assert.Equal(t, types.ReadinessNeedsWork, ReadinessFor(3, 100))
	assert.Equal(t, types.ReadinessNeedsWork, ReadinessFor(0, 49))
	assert.Equal(t, types.ReadinessAlmostReady, ReadinessFor(0, 69))
	assert.Equal(t, types.ReadinessReady, ReadinessFor(0, 89))
	assert.Equal(t, types.ReadinessExcellent, ReadinessFor(0, 90))
}

func TestQuickCheck(t *testing.T) {
	e := newEngine()

	result, err := e.QuickCheck(completeProfile(), "FR")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Zero(t, result.CriticalCount)
	assert.Nil(t, result.TopIssue)

	// no cap and no multiplier: 100 - (10 + 5 + 8 + 15 + 5 + 5)
	result, err = e.QuickCheck(endToEndProfile(), "")
	require.NoError(t, err)
	assert.Equal(t, 52, result.Score)
	assert.Equal(t, 2, result.CriticalCount)
	require.NotNil(t, result.TopIssue)
	assert.Equal(t, "Email address is malformed", *result.TopIssue)
}

func TestQuickCheck_TopIssueFallsBackToFirstIssue(t *testing.T) {
	p := completeProfile()
	p.PersonalInfo.Phone = ""
	result, err := newEngine().QuickCheck(p, "FR")
	require.NoError(t, err)
	assert.Equal(t, 95, result.Score)
	require.NotNil(t, result.TopIssue)
	assert.Equal(t, "No phone number", *result.TopIssue)
}

func TestQuickCheck_Clamped(t *testing.T) {
	p := &types.CVProfile{PersonalInfo: types.PersonalInfo{HasPhoto: true, BirthDate: "1990"}}
	result, err := newEngine().QuickCheck(p, "US")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
}

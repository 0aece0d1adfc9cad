package audit

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-auditor/internal/types"
)

// Completeness thresholds
const (
	minSummaryRunes = 30
	minExperiences  = 1
	minSkills       = 3
)

// Each critical issue removes 15% of the score, down to a 30% floor. ATS penalties weigh 1.5x.
const (
	criticalStep      = 0.15
	minCriticalFactor = 0.3
	atsPenaltyWeight  = 1.5
	maxScore          = 100.0
)

// CheckCompleteness evaluates the six core-field checks and derives the score cap.
func CheckCompleteness(p *types.CVProfile) types.Completeness {
	info := p.PersonalInfo
	c := types.Completeness{
		FullName:   strings.TrimSpace(info.FirstName) != "" && strings.TrimSpace(info.LastName) != "",
		Title:      strings.TrimSpace(info.Title) != "",
		Email:      strings.TrimSpace(info.Email) != "",
		Summary:    utf8.RuneCountInString(strings.TrimSpace(p.Summary)) >= minSummaryRunes,
		Experience: len(p.Experiences) >= minExperiences,
		Skills:     countNonBlank(p.Skills) >= minSkills,
	}

	met := 0
	for _, ok := range []bool{c.FullName, c.Title, c.Email, c.Summary, c.Experience, c.Skills} {
		if ok {
			met++
		}
	}
	c.Ratio = float64(met) / 6
	c.MaxScore = MaxScore(c.Ratio)
	return c
}

// MaxScore maps a completeness ratio to the highest reachable score.
func MaxScore(ratio float64) float64 {
	switch {
	case ratio >= 1:
		return 100
	case ratio >= 0.7:
		return 80
	case ratio >= 0.5:
		return 50
	default:
		return 25
	}
}

// CriticalMultiplier returns the factor applied to the score for criticalCount critical issues.
func CriticalMultiplier(criticalCount int) float64 {
	if criticalCount <= 0 {
		return 1
	}
	return math.Max(minCriticalFactor, 1-float64(criticalCount)*criticalStep)
}

// computeScore applies the cap, the penalties of every issue and the critical multiplier.
func computeScore(capScore float64, issues []types.Issue) float64 {
	score := capScore - totalPenalty(issues)
	criticals := 0
	for _, is := range issues {
		if is.Category == types.CategoryCritical {
			criticals++
		}
	}
	score *= CriticalMultiplier(criticals)
	return clamp(score)
}

// computeATSScore weighs only layout and typography issues; no cap and no multiplier.
func computeATSScore(issues []types.Issue) float64 {
	penalty := 0.0
	for _, is := range issues {
		if is.Type == types.TypeATS || is.Type == types.TypeTypography {
			penalty += is.ScorePenalty * atsPenaltyWeight
		}
	}
	return clamp(maxScore - penalty)
}

// GradeFor maps a score to its letter grade.
func GradeFor(score int) types.Grade {
	switch {
	case score >= 95:
		return types.GradeAPlus
	case score >= 85:
		return types.GradeA
	case score >= 75:
		return types.GradeB
	case score >= 60:
		return types.GradeC
	case score >= 40:
		return types.GradeD
	default:
		return types.GradeF
	}
}

// ReadinessFor classifies submit readiness from the critical count and score.
func ReadinessFor(criticalCount, score int) types.Readiness {
	switch {
	case criticalCount > 3:
		return types.ReadinessNotReady
	case criticalCount > 0 || score < 50:
		return types.ReadinessNeedsWork
	case score < 70:
		return types.ReadinessAlmostReady
	case score < 90:
		return types.ReadinessReady
	default:
		return types.ReadinessExcellent
	}
}

func totalPenalty(issues []types.Issue) float64 {
	sum := 0.0
	for _, is := range issues {
		sum += is.ScorePenalty
	}
	return sum
}

func clamp(score float64) float64 {
	return math.Min(maxScore, math.Max(0, score))
}

func round(score float64) int {
	return int(math.Round(score))
}

func countNonBlank(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

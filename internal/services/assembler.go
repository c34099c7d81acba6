package services

import (
	"fmt"
	"math"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

const (
	strongMatchConfidence = 0.8
	goodMatchConfidence   = 0.6
)

// Assemble builds the PredictionResult. Suitability confidence is the
// confidence of the decision taken, so a rejection at p=0.2 reports 80%.
func Assemble(
	profile models.CandidateProfile,
	roles *RoleDistribution,
	suitability models.SuitabilityScore,
	threshold float64,
) models.PredictionResult {
	suitable := IsSuitable(suitability.ProbabilityPass, threshold)
	decisionConfidence := suitability.ProbabilityPass
	if !suitable {
		decisionConfidence = 1 - suitability.ProbabilityPass
	}

	top := make([]models.RoleMatch, len(roles.Top))
	for i, s := range roles.Top {
		top[i] = models.RoleMatch{Role: s.Role, Confidence: s.Probability}
	}

	skills := make([]string, len(profile.Skills))
	copy(skills, profile.Skills)

	return models.PredictionResult{
		CandidateName:         profile.Name,
		Email:                 profile.Email,
		Phone:                 profile.Phone,
		Education:             profile.Education.Display(),
		ExperienceYears:       profile.ExperienceYears,
		Skills:                profile.SkillsDisplay(),
		SkillList:             skills,
		RecommendedRole:       roles.Recommended.Role,
		RoleConfidence:        percent(roles.Recommended.Probability),
		IsSuitable:            suitable,
		SuitabilityConfidence: percent(decisionConfidence),
		ProbabilityPass:       suitability.ProbabilityPass,
		TopRoles:              top,
		Recommendation:        recommendation(roles.Recommended.Role, suitable, decisionConfidence),
	}
}

func recommendation(role string, suitable bool, confidence float64) string {
	verdict := "Not a good fit"
	if suitable {
		switch {
		case confidence >= strongMatchConfidence:
			verdict = "Strong candidate match"
		case confidence >= goodMatchConfidence:
			verdict = "Good candidate match"
		default:
			verdict = "Review candidate properly"
		}
	}
	return fmt.Sprintf("%s for %s (%.2f%% confidence).", verdict, role, percent(confidence))
}

func percent(p float64) float64 {
	return math.Round(p*10000) / 100
}

func topRolesText(top []models.RoleMatch) string {
	parts := make([]string, len(top))
	for i, m := range top {
		parts[i] = fmt.Sprintf("%s (%.2f%%)", m.Role, percent(m.Confidence))
	}
	return strings.Join(parts, "; ")
}

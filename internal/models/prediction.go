package models

type RoleScore struct {
	Role        string  `json:"role"`
	Probability float64 `json:"probability"`
}

type SuitabilityScore struct {
	Role            string  `json:"role"`
	ProbabilityPass float64 `json:"probability_pass"`
}

type RoleMatch struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// PredictionResult is the outcome of screening one resume. Percent fields are
// in [0,100]; TopRoles confidences and ProbabilityPass are in [0,1].
type PredictionResult struct {
	CandidateName         string      `json:"candidate_name"`
	Email                 string      `json:"email"`
	Phone                 string      `json:"phone"`
	Education             string      `json:"education"`
	ExperienceYears       float64     `json:"experience_years"`
	Skills                string      `json:"skills"`
	SkillList             []string    `json:"skill_list"`
	RecommendedRole       string      `json:"recommended_role"`
	RoleConfidence        float64     `json:"role_confidence"`
	IsSuitable            bool        `json:"is_suitable"`
	SuitabilityConfidence float64     `json:"suitability_confidence"`
	ProbabilityPass       float64     `json:"probability_pass"`
	TopRoles              []RoleMatch `json:"top_3_roles"`
	Recommendation        string      `json:"recommendation"`
}

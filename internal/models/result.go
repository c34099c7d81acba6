package models

type PredictTextRequest struct {
	Text string `json:"text"`
}

type PredictionResponse struct {
	ScreeningID string `json:"screening_id,omitempty"`
	PredictionResult
}

type ScreeningResponse struct {
	ID                    string  `json:"id"`
	SourceName            string  `json:"source_name"`
	CandidateName         string  `json:"candidate_name"`
	Email                 string  `json:"email"`
	RecommendedRole       string  `json:"recommended_role"`
	RoleConfidence        float64 `json:"role_confidence"`
	IsSuitable            bool    `json:"is_suitable"`
	SuitabilityConfidence float64 `json:"suitability_confidence"`
	CreatedAt             string  `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Screening is the persisted summary of a prediction.
type Screening struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourceName            string    `gorm:"type:text" json:"source_name"`
	CandidateName         string    `gorm:"type:text" json:"candidate_name"`
	Email                 string    `gorm:"type:text" json:"email"`
	RecommendedRole       string    `gorm:"type:text;index" json:"recommended_role"`
	RoleConfidence        float64   `gorm:"type:decimal(5,2)" json:"role_confidence"`
	IsSuitable            bool      `gorm:"not null" json:"is_suitable"`
	SuitabilityConfidence float64   `gorm:"type:decimal(5,2)" json:"suitability_confidence"`
	CreatedAt             time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Screening) TableName() string {
	return "screenings"
}

func NewScreening(sourceName string, result *PredictionResult) *Screening {
	return &Screening{
		ID:                    uuid.New(),
		SourceName:            sourceName,
		CandidateName:         result.CandidateName,
		Email:                 result.Email,
		RecommendedRole:       result.RecommendedRole,
		RoleConfidence:        result.RoleConfidence,
		IsSuitable:            result.IsSuitable,
		SuitabilityConfidence: result.SuitabilityConfidence,
		CreatedAt:             time.Now(),
	}
}

func (s *Screening) Response() ScreeningResponse {
	return ScreeningResponse{
		ID:                    s.ID.String(),
		SourceName:            s.SourceName,
		CandidateName:         s.CandidateName,
		Email:                 s.Email,
		RecommendedRole:       s.RecommendedRole,
		RoleConfidence:        s.RoleConfidence,
		IsSuitable:            s.IsSuitable,
		SuitabilityConfidence: s.SuitabilityConfidence,
		CreatedAt:             s.CreatedAt.Format(time.RFC3339),
	}
}

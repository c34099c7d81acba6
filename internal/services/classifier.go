package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
)

type ResumeClassifierService interface {
	Predict(ctx context.Context, text string) (*models.PredictionResult, error)
	PredictPDF(ctx context.Context, data []byte) (*models.PredictionResult, error)
}

type resumeClassifierService struct {
	model     *Model
	extractor *FieldExtractor
	pdfParser PDFParserService
	threshold float64
	logger    *zap.Logger
}

func NewResumeClassifierService(
	model *Model,
	extractor *FieldExtractor,
	pdfParser PDFParserService,
	threshold float64,
	logger *zap.Logger,
) ResumeClassifierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &resumeClassifierService{
		model:     model,
		extractor: extractor,
		pdfParser: pdfParser,
		threshold: threshold,
		logger:    logger,
	}
}

// Predict runs the full pipeline on plain text. Empty text is valid input and
// yields a result built from an all-default profile.
func (s *resumeClassifierService) Predict(ctx context.Context, text string) (*models.PredictionResult, error) {
	profile := s.extractor.Extract(Normalize(text))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	features := s.model.Encoder.Encode(profile)

	roles, err := s.model.Roles.Classify(features)
	if err != nil {
		return nil, fmt.Errorf("failed to classify role: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	role := roles.Recommended.Role
	pass, err := s.model.Suitability.ScoreSuitability(features, role)
	if err != nil {
		return nil, fmt.Errorf("failed to score suitability: %w", err)
	}

	result := Assemble(profile, roles, models.SuitabilityScore{Role: role, ProbabilityPass: pass}, s.threshold)

	s.logger.Debug("resume classified",
		zap.String("recommended_role", result.RecommendedRole),
		zap.Float64("role_confidence", result.RoleConfidence),
		zap.Bool("is_suitable", result.IsSuitable),
		zap.Float64("probability_pass", pass),
		zap.Int("skills", len(profile.Skills)),
		zap.Float64("experience_years", profile.ExperienceYears),
	)

	return &result, nil
}

func (s *resumeClassifierService) PredictPDF(ctx context.Context, data []byte) (*models.PredictionResult, error) {
	text, err := s.pdfParser.ExtractTextFromBytes(data)
	if err != nil {
		return nil, err
	}
	return s.Predict(ctx, text)
}

// Package app wires configuration, the loaded model and the pipeline so the
// server and the CLI build them the same way.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/services"
)

type Screener struct {
	Model      *services.Model
	Extractor  *services.FieldExtractor
	Classifier services.ResumeClassifierService
}

// NewScreener loads the artifact at artifactPath. Any schema problem is
// returned here, before a single request is served.
func NewScreener(cfg *config.Config, artifactPath string, log *zap.Logger) (*Screener, error) {
	extractor, err := services.NewFieldExtractor(services.DefaultExtractorConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to build extractor: %w", err)
	}

	model, err := services.LoadModel(artifactPath, extractor.SkillNames())
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", artifactPath, err)
	}

	log.Info("model loaded",
		zap.String("artifact", artifactPath),
		zap.Int("feature_dim", model.Schema.Dim),
		zap.Int("skills", len(model.Schema.Vocabulary)),
		zap.Strings("roles", model.Roles.BaseRoles()),
	)

	classifier := services.NewResumeClassifierService(
		model,
		extractor,
		services.NewPDFParserService(),
		cfg.Model.SuitabilityThreshold,
		log,
	)

	return &Screener{Model: model, Extractor: extractor, Classifier: classifier}, nil
}

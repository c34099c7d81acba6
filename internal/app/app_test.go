package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/config"
)

const sampleArtifact = "../../artifacts/resume_model.json"

func testConfig() *config.Config {
	return &config.Config{Model: config.ModelConfig{ArtifactPath: sampleArtifact, SuitabilityThreshold: 0.5}}
}

func TestNewScreener(t *testing.T) {
	s, err := NewScreener(testConfig(), sampleArtifact, zap.NewNop())
	require.NoError(t, err)

	r, err := s.Classifier.Predict(context.Background(), "Alex Morgan\nSkills: Python, Machine Learning, Pandas, Statistics")
	require.NoError(t, err)

	assert.Equal(t, "Alex Morgan", r.CandidateName)
	assert.Equal(t, "Data Scientist", r.RecommendedRole)
	assert.Equal(t, r.RecommendedRole, r.TopRoles[0].Role)
	assert.LessOrEqual(t, len(r.TopRoles), 3)
}

func TestNewScreener_MissingArtifact(t *testing.T) {
	_, err := NewScreener(testConfig(), filepath.Join(t.TempDir(), "model.json"), zap.NewNop())
	assert.Error(t, err)
}

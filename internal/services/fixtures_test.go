package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

var testReferenceDate = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func newTestExtractor(t *testing.T) *FieldExtractor {
	t.Helper()
	cfg := DefaultExtractorConfig()
	cfg.ReferenceDate = testReferenceDate
	e, err := NewFieldExtractor(cfg)
	require.NoError(t, err)
	return e
}

// testArtifact has three skills and two roles: java drives Software
// Engineer, python drives Data Scientist. Suitability depends only on
// experience and is exactly 0.5 at five years.
func testArtifact() *Artifact {
	return &Artifact{
		SchemaVersion:    FeatureSchemaVersion,
		EducationLevels:  append([]string(nil), models.EducationLevels...),
		SkillVocabulary:  []string{"java", "python", "sql"},
		FeatureDim:       5,
		ExperienceScaler: ScalerParams{Kind: "minmax", Min: 0, Max: 20},
		RoleModel: RoleModelParams{
			Classes: []string{"Data Scientist", "Software Engineer"},
			Coefficients: [][]float64{
				{0, 0, 0, 2, 0},
				{0, 0, 2, 0, 0},
			},
			Intercepts: []float64{0, 0},
		},
		SuitabilityModels: map[string]BinaryModelParams{
			"Data Scientist": {
				Classes:       []string{"reject", "select"},
				PositiveClass: "select",
				Coefficients:  []float64{8, 0, 0, 0, 0},
				Intercept:     -2,
			},
			"Software Engineer": {
				Classes:       []string{"reject", "select"},
				PositiveClass: "select",
				Coefficients:  []float64{8, 0, 0, 0, 0},
				Intercept:     -2,
			},
		},
	}
}

func newTestModel(t *testing.T, e *FieldExtractor) *Model {
	t.Helper()
	m, err := NewModel(testArtifact(), e.SkillNames())
	require.NoError(t, err)
	return m
}

func newTestClassifier(t *testing.T) ResumeClassifierService {
	t.Helper()
	e := newTestExtractor(t)
	return NewResumeClassifierService(newTestModel(t, e), e, NewPDFParserService(), DefaultSuitabilityThreshold, nil)
}

type fakeRoleScorer struct {
	classes []string
	probs   []float64
	err     error
}

func (f fakeRoleScorer) Classes() []string { return f.classes }

func (f fakeRoleScorer) PredictProba(models.FeatureVector) ([]float64, error) {
	return f.probs, f.err
}

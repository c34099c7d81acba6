package services

import (
	"fmt"
	"math"

	"alfredoptarigan/resume-screener/internal/models"
)

// FeatureSchemaVersion is the layout this encoder produces:
// [scaled experience, education ordinal, one binary column per skill].
const FeatureSchemaVersion = 1

const fixedFeatureColumns = 2

type FeatureSchema struct {
	Version         int
	EducationLevels []string
	Vocabulary      []string
	Dim             int
	Scaler          ScalerParams
}

// FeatureEncoder turns a CandidateProfile into the vector the models were
// trained on. Immutable after construction.
type FeatureEncoder struct {
	schema     FeatureSchema
	skillIndex map[string]int
	scale      func(float64) float64
}

// NewFeatureEncoder reports ErrSchemaMismatch when the schema cannot be
// produced by this encoder.
func NewFeatureEncoder(schema FeatureSchema, knownSkills []string) (*FeatureEncoder, error) {
	if schema.Version != FeatureSchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, encoder produces %d", ErrSchemaMismatch, schema.Version, FeatureSchemaVersion)
	}

	if len(schema.EducationLevels) != len(models.EducationLevels) {
		return nil, fmt.Errorf("%w: %d education levels, expected %d", ErrSchemaMismatch, len(schema.EducationLevels), len(models.EducationLevels))
	}
	for i, level := range models.EducationLevels {
		if schema.EducationLevels[i] != level {
			return nil, fmt.Errorf("%w: education level %d is %q, expected %q", ErrSchemaMismatch, i, schema.EducationLevels[i], level)
		}
	}

	want := fixedFeatureColumns + len(schema.Vocabulary)
	if schema.Dim != want {
		return nil, fmt.Errorf("%w: feature_dim %d, encoder produces %d", ErrSchemaMismatch, schema.Dim, want)
	}

	known := make(map[string]bool, len(knownSkills))
	for _, s := range knownSkills {
		known[s] = true
	}

	index := make(map[string]int, len(schema.Vocabulary))
	for i, skill := range schema.Vocabulary {
		if _, dup := index[skill]; dup {
			return nil, fmt.Errorf("%w: duplicate skill %q in vocabulary", ErrSchemaMismatch, skill)
		}
		if !known[skill] {
			return nil, fmt.Errorf("%w: skill %q is never produced by the extractor", ErrSchemaMismatch, skill)
		}
		index[skill] = fixedFeatureColumns + i
	}

	scale, err := newScaler(schema.Scaler)
	if err != nil {
		return nil, err
	}

	return &FeatureEncoder{schema: schema, skillIndex: index, scale: scale}, nil
}

func newScaler(p ScalerParams) (func(float64) float64, error) {
	switch p.Kind {
	case "minmax":
		span := p.Max - p.Min
		if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
			return nil, fmt.Errorf("%w: minmax scaler needs max > min", ErrSchemaMismatch)
		}
		return func(x float64) float64 { return (x - p.Min) / span }, nil
	case "standard":
		if p.Scale <= 0 || math.IsNaN(p.Scale) || math.IsInf(p.Scale, 0) {
			return nil, fmt.Errorf("%w: standard scaler needs scale > 0", ErrSchemaMismatch)
		}
		return func(x float64) float64 { return (x - p.Mean) / p.Scale }, nil
	default:
		return nil, fmt.Errorf("%w: unknown scaler kind %q", ErrSchemaMismatch, p.Kind)
	}
}

func (e *FeatureEncoder) Dim() int {
	return e.schema.Dim
}

// Encode is pure. Skills outside the vocabulary are dropped.
func (e *FeatureEncoder) Encode(profile models.CandidateProfile) models.FeatureVector {
	v := make(models.FeatureVector, e.schema.Dim)
	v[0] = e.scale(profile.ExperienceYears)
	v[1] = float64(profile.Education.Level)
	for _, skill := range profile.Skills {
		if i, ok := e.skillIndex[skill]; ok {
			v[i] = 1
		}
	}
	return v
}

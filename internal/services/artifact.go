package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Artifact is the serialized output of offline training.
type Artifact struct {
	SchemaVersion     int                          `json:"schema_version"`
	EducationLevels   []string                     `json:"education_levels"`
	SkillVocabulary   []string                     `json:"skill_vocabulary"`
	FeatureDim        int                          `json:"feature_dim"`
	ExperienceScaler  ScalerParams                 `json:"experience_scaler"`
	RoleModel         RoleModelParams              `json:"role_model"`
	SuitabilityModels map[string]BinaryModelParams `json:"suitability_models"`
}

type ScalerParams struct {
	Kind  string  `json:"kind"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`
	Mean  float64 `json:"mean,omitempty"`
	Scale float64 `json:"scale,omitempty"`
}

// RoleModelParams is a multinomial logistic regression: one coefficient row
// and intercept per class.
type RoleModelParams struct {
	Classes       []string    `json:"classes"`
	ClassSuffixes []string    `json:"class_suffixes,omitempty"`
	Coefficients  [][]float64 `json:"coefficients"`
	Intercepts    []float64   `json:"intercepts"`
}

// BinaryModelParams is a binary logistic regression. The logit is the
// log-odds of Classes[1].
type BinaryModelParams struct {
	Classes       []string  `json:"classes"`
	PositiveClass string    `json:"positive_class"`
	Coefficients  []float64 `json:"coefficients"`
	Intercept     float64   `json:"intercept"`
}

// Model bundles everything scoring needs. It is immutable once built and
// shared by all requests.
type Model struct {
	Schema      FeatureSchema
	Encoder     *FeatureEncoder
	Roles       *RoleClassifier
	Suitability SuitabilityScorer
}

var artifactSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"schema_version":   map[string]any{"type": "integer", "minimum": 1},
		"education_levels": stringList(1),
		"skill_vocabulary": stringList(0),
		"feature_dim":      map[string]any{"type": "integer", "minimum": 2},
		"experience_scaler": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind":  map[string]any{"type": "string", "enum": []any{"minmax", "standard"}},
				"min":   map[string]any{"type": "number"},
				"max":   map[string]any{"type": "number"},
				"mean":  map[string]any{"type": "number"},
				"scale": map[string]any{"type": "number"},
			},
			"required": []any{"kind"},
		},
		"role_model": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"classes":        stringList(1),
				"class_suffixes": stringList(0),
				"coefficients": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    numberList(),
				},
				"intercepts": numberList(),
			},
			"required": []any{"classes", "coefficients", "intercepts"},
		},
		"suitability_models": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"classes": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"positive_class": map[string]any{"type": "string", "minLength": 1},
					"coefficients":   numberList(),
					"intercept":      map[string]any{"type": "number"},
				},
				"required": []any{"classes", "positive_class", "coefficients", "intercept"},
			},
		},
	},
	"required": []any{
		"schema_version", "education_levels", "skill_vocabulary", "feature_dim",
		"experience_scaler", "role_model", "suitability_models",
	},
}

func stringList(minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": minItems,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}
}

func numberList() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "number"}}
}

var (
	artifactSchemaOnce sync.Once
	artifactSchema     *jsonschema.Schema
	artifactSchemaErr  error
)

func compiledArtifactSchema() (*jsonschema.Schema, error) {
	artifactSchemaOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps of typed slices.
		raw, err := json.Marshal(artifactSchemaDefinition)
		if err != nil {
			artifactSchemaErr = fmt.Errorf("marshal artifact schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			artifactSchemaErr = fmt.Errorf("parse artifact schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://model-artifact.json"
		if err := c.AddResource(url, doc); err != nil {
			artifactSchemaErr = fmt.Errorf("add artifact schema: %w", err)
			return
		}
		artifactSchema, artifactSchemaErr = c.Compile(url)
	})
	return artifactSchema, artifactSchemaErr
}

// ParseArtifact validates raw JSON against the artifact schema and decodes it.
func ParseArtifact(raw []byte) (*Artifact, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidArtifact, err)
	}

	schema, err := compiledArtifactSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return &artifact, nil
}

func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return ParseArtifact(raw)
}

// NewModel checks the artifact against the compiled feature schema and the
// extractor's skill vocabulary, then builds the scorers.
func NewModel(artifact *Artifact, knownSkills []string) (*Model, error) {
	schema := FeatureSchema{
		Version:         artifact.SchemaVersion,
		EducationLevels: artifact.EducationLevels,
		Vocabulary:      artifact.SkillVocabulary,
		Dim:             artifact.FeatureDim,
		Scaler:          artifact.ExperienceScaler,
	}

	encoder, err := NewFeatureEncoder(schema, knownSkills)
	if err != nil {
		return nil, err
	}

	roleScorer, err := newLogisticRoleScorer(artifact.RoleModel, schema.Dim)
	if err != nil {
		return nil, err
	}
	roles := NewRoleClassifier(roleScorer, artifact.RoleModel.ClassSuffixes)

	suitability, err := newPerRoleSuitability(artifact.SuitabilityModels, schema.Dim)
	if err != nil {
		return nil, err
	}
	for _, role := range roles.BaseRoles() {
		if !suitability.HasRole(role) {
			return nil, fmt.Errorf("%w: no suitability model for role %q", ErrSchemaMismatch, role)
		}
	}

	return &Model{
		Schema:      schema,
		Encoder:     encoder,
		Roles:       roles,
		Suitability: suitability,
	}, nil
}

// LoadModel reads, validates and builds the model at path.
func LoadModel(path string, knownSkills []string) (*Model, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return NewModel(artifact, knownSkills)
}

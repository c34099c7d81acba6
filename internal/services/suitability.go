package services

import (
	"fmt"
	"math"

	"alfredoptarigan/resume-screener/internal/models"
)

// DefaultSuitabilityThreshold is the pass boundary; a probability equal to
// the threshold passes.
const DefaultSuitabilityThreshold = 0.5

// SuitabilityScorer returns the probability that a candidate passes for role.
type SuitabilityScorer interface {
	ScoreSuitability(x models.FeatureVector, role string) (float64, error)
}

type binaryLogit struct {
	coef             []float64
	intercept        float64
	positiveIsSecond bool // pass class is Classes[1]
}

func (m binaryLogit) probabilityPass(x models.FeatureVector) (float64, error) {
	if len(x) != len(m.coef) {
		return 0, fmt.Errorf("feature vector has %d columns, model expects %d", len(x), len(m.coef))
	}
	z := m.intercept
	for j, w := range m.coef {
		z += w * x[j]
	}
	p := 1 / (1 + math.Exp(-z))
	if !m.positiveIsSecond {
		p = 1 - p
	}
	return p, nil
}

// perRoleSuitability holds one independent binary model per base role.
type perRoleSuitability struct {
	models map[string]binaryLogit
}

func newPerRoleSuitability(params map[string]BinaryModelParams, dim int) (*perRoleSuitability, error) {
	s := &perRoleSuitability{models: make(map[string]binaryLogit, len(params))}
	for role, p := range params {
		if len(p.Coefficients) != dim {
			return nil, fmt.Errorf("%w: suitability model %q has %d coefficients, feature_dim is %d",
				ErrSchemaMismatch, role, len(p.Coefficients), dim)
		}
		if len(p.Classes) != 2 {
			return nil, fmt.Errorf("%w: suitability model %q needs 2 classes", ErrSchemaMismatch, role)
		}

		var second bool
		switch p.PositiveClass {
		case p.Classes[1]:
			second = true
		case p.Classes[0]:
			second = false
		default:
			return nil, fmt.Errorf("%w: suitability model %q has no class %q",
				ErrSchemaMismatch, role, p.PositiveClass)
		}

		s.models[role] = binaryLogit{coef: p.Coefficients, intercept: p.Intercept, positiveIsSecond: second}
	}
	return s, nil
}

func (s *perRoleSuitability) HasRole(role string) bool {
	_, ok := s.models[role]
	return ok
}

func (s *perRoleSuitability) ScoreSuitability(x models.FeatureVector, role string) (float64, error) {
	m, ok := s.models[role]
	if !ok {
		return 0, fmt.Errorf("%w: no suitability model for role %q", ErrClassification, role)
	}
	p, err := m.probabilityPass(x)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: pass probability %v for role %q", ErrClassification, p, role)
	}
	return p, nil
}

// IsSuitable applies the decision threshold.
func IsSuitable(probabilityPass, threshold float64) bool {
	return probabilityPass >= threshold
}

package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

const (
	topRoleCount     = 3
	simplexTolerance = 1e-6
)

// RoleScorer is a trained multi-class model. PredictProba returns one
// probability per entry of Classes, in the same order.
type RoleScorer interface {
	Classes() []string
	PredictProba(x models.FeatureVector) ([]float64, error)
}

type logisticRoleScorer struct {
	classes    []string
	coef       [][]float64
	intercepts []float64
}

func newLogisticRoleScorer(p RoleModelParams, dim int) (*logisticRoleScorer, error) {
	if len(p.Coefficients) != len(p.Classes) || len(p.Intercepts) != len(p.Classes) {
		return nil, fmt.Errorf("%w: role model has %d classes, %d coefficient rows, %d intercepts",
			ErrSchemaMismatch, len(p.Classes), len(p.Coefficients), len(p.Intercepts))
	}
	seen := make(map[string]bool, len(p.Classes))
	for i, row := range p.Coefficients {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: role %q has %d coefficients, feature_dim is %d",
				ErrSchemaMismatch, p.Classes[i], len(row), dim)
		}
		if seen[p.Classes[i]] {
			return nil, fmt.Errorf("%w: duplicate role class %q", ErrSchemaMismatch, p.Classes[i])
		}
		seen[p.Classes[i]] = true
	}
	return &logisticRoleScorer{classes: p.Classes, coef: p.Coefficients, intercepts: p.Intercepts}, nil
}

func (s *logisticRoleScorer) Classes() []string {
	return s.classes
}

// PredictProba computes softmax(W·x + b).
func (s *logisticRoleScorer) PredictProba(x models.FeatureVector) ([]float64, error) {
	logits := make([]float64, len(s.classes))
	maxLogit := math.Inf(-1)
	for k, row := range s.coef {
		if len(row) != len(x) {
			return nil, fmt.Errorf("feature vector has %d columns, model expects %d", len(x), len(row))
		}
		z := s.intercepts[k]
		for j, w := range row {
			z += w * x[j]
		}
		logits[k] = z
		maxLogit = math.Max(maxLogit, z)
	}

	sum := 0.0
	for k, z := range logits {
		logits[k] = math.Exp(z - maxLogit)
		sum += logits[k]
	}
	for k := range logits {
		logits[k] /= sum
	}
	return logits, nil
}

// RoleDistribution is the full output of the role classifier for one vector.
type RoleDistribution struct {
	Scores      []models.RoleScore // model class order, sums to 1
	Top         []models.RoleScore // up to three distinct base roles, highest first
	Recommended models.RoleScore
}

type RoleClassifier struct {
	scorer   RoleScorer
	suffixes []string
}

// NewRoleClassifier wraps scorer. Class labels ending in one of suffixes
// (for example "_select") are reported under their base role.
func NewRoleClassifier(scorer RoleScorer, suffixes []string) *RoleClassifier {
	return &RoleClassifier{scorer: scorer, suffixes: suffixes}
}

func (c *RoleClassifier) BaseRole(class string) string {
	for _, suffix := range c.suffixes {
		if base := strings.TrimSuffix(class, suffix); base != class && base != "" {
			return base
		}
	}
	return class
}

// BaseRoles lists the distinct base roles in class order.
func (c *RoleClassifier) BaseRoles() []string {
	var roles []string
	seen := make(map[string]bool)
	for _, class := range c.scorer.Classes() {
		role := c.BaseRole(class)
		if !seen[role] {
			seen[role] = true
			roles = append(roles, role)
		}
	}
	return roles
}

func (c *RoleClassifier) Classify(x models.FeatureVector) (*RoleDistribution, error) {
	classes := c.scorer.Classes()
	probs, err := c.scorer.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	if err := checkSimplex(probs, len(classes)); err != nil {
		return nil, err
	}

	scores := make([]models.RoleScore, len(classes))
	for i, class := range classes {
		scores[i] = models.RoleScore{Role: class, Probability: probs[i]}
	}

	ranked := make([]models.RoleScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Probability != ranked[j].Probability {
			return ranked[i].Probability > ranked[j].Probability
		}
		return ranked[i].Role < ranked[j].Role
	})

	top := make([]models.RoleScore, 0, topRoleCount)
	seen := make(map[string]bool)
	for _, s := range ranked {
		role := c.BaseRole(s.Role)
		if seen[role] {
			continue
		}
		seen[role] = true
		top = append(top, models.RoleScore{Role: role, Probability: s.Probability})
		if len(top) == topRoleCount {
			break
		}
	}

	return &RoleDistribution{Scores: scores, Top: top, Recommended: top[0]}, nil
}

func checkSimplex(probs []float64, classes int) error {
	if classes == 0 || len(probs) != classes {
		return fmt.Errorf("%w: got %d probabilities for %d classes", ErrClassification, len(probs), classes)
	}
	sum := 0.0
	for _, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: probability %v outside [0,1]", ErrClassification, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > simplexTolerance {
		return fmt.Errorf("%w: probabilities sum to %v", ErrClassification, sum)
	}
	return nil
}

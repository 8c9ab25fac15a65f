package classifier

import (
	"fmt"

	"github.com/nao1215/veritas/internal/model"
)

// Classifier predicts a label for a feature vector.
type Classifier interface {
	Predict(v Vector) (model.Label, error)
}

// MarginScorer is implemented by classifiers that expose a signed distance
// to their decision boundary.
type MarginScorer interface {
	DecisionMargin(v Vector) (float64, error)
}

// LinearModel is a binary linear classifier. A positive margin selects the
// second class.
type LinearModel struct {
	negative  model.Label
	positive  model.Label
	coef      []float64
	intercept float64
}

// modelFile is the on-disk form of a LinearModel.
type modelFile struct {
	Classes   []string  `json:"classes"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// newLinearModel validates f and builds a model with the given feature dimension.
func newLinearModel(f modelFile, dimension int) (*LinearModel, error) {
	if len(f.Classes) != 2 {
		return nil, fmt.Errorf("%w: expected 2 classes, got %d", ErrInvalidArtifacts, len(f.Classes))
	}
	neg, ok := model.ParseLabel(f.Classes[0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown class %q", ErrInvalidArtifacts, f.Classes[0])
	}
	pos, ok := model.ParseLabel(f.Classes[1])
	if !ok {
		return nil, fmt.Errorf("%w: unknown class %q", ErrInvalidArtifacts, f.Classes[1])
	}
	if neg == pos {
		return nil, fmt.Errorf("%w: duplicate class %q", ErrInvalidArtifacts, neg)
	}
	if len(f.Coef) != dimension {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrInvalidArtifacts, len(f.Coef), dimension)
	}

	return &LinearModel{
		negative:  neg,
		positive:  pos,
		coef:      f.Coef,
		intercept: f.Intercept,
	}, nil
}

// DecisionMargin returns w·v + b.
func (m *LinearModel) DecisionMargin(v Vector) (float64, error) {
	dot, err := v.Dot(m.coef)
	if err != nil {
		return 0, err
	}
	return dot + m.intercept, nil
}

// Predict returns the second class for a positive margin and the first otherwise.
func (m *LinearModel) Predict(v Vector) (model.Label, error) {
	margin, err := m.DecisionMargin(v)
	if err != nil {
		return "", err
	}
	if margin > 0 {
		return m.positive, nil
	}
	return m.negative, nil
}

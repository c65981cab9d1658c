package inference

import (
	"fmt"
	"math"

	"github.com/okian/courtside/internal/domain/features"
)

// LogisticRegression is a fitted binary logistic model over the scaled row.
type LogisticRegression struct {
	coef      [features.Dim]float64
	intercept float64
}

// NewLogisticRegression builds a model from fitted weights.
func NewLogisticRegression(coef []float64, intercept float64) (*LogisticRegression, error) {
	if len(coef) != features.Dim {
		return nil, fmt.Errorf("coef=%d want %d: %w", len(coef), features.Dim, ErrShape)
	}
	if !finite(intercept) {
		return nil, fmt.Errorf("intercept: %w", ErrParameter)
	}
	m := &LogisticRegression{intercept: intercept}
	for i, w := range coef {
		if !finite(w) {
			return nil, fmt.Errorf("coef %d: %w", i, ErrParameter)
		}
		m.coef[i] = w
	}
	return m, nil
}

// Decision returns the raw linear score w·x + b.
func (m *LogisticRegression) Decision(x Scaled) float64 {
	z := m.intercept
	for i := range x {
		z += m.coef[i] * x[i]
	}
	return z
}

// Predict implements Classifier. The home class wins when its probability exceeds one half.
func (m *LogisticRegression) Predict(x Scaled) (int, error) {
	if err := checkScaled(x); err != nil {
		return 0, err
	}
	if m.Decision(x) > 0 {
		return HomeWin, nil
	}
	return 0, nil
}

// PredictProba implements Classifier.
func (m *LogisticRegression) PredictProba(x Scaled) ([2]float64, error) {
	if err := checkScaled(x); err != nil {
		return [2]float64{}, err
	}
	p := sigmoid(m.Decision(x))
	return [2]float64{1 - p, p}, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func checkScaled(x Scaled) error {
	for i, v := range x {
		if !finite(v) {
			return fmt.Errorf("scaled input %d: %w", i, ErrParameter)
		}
	}
	return nil
}

package service_test

import (
	"context"

	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/internal/domain/inference"
)

type fakeStore struct {
	home, away features.Side
	ratios     features.WinRatios
	err        error

	sideCalls  int
	ratioCalls int
	closed     bool
}

func (f *fakeStore) SideAggregates(_ context.Context, _, _ string) (features.Side, features.Side, error) {
	f.sideCalls++
	if f.err != nil {
		return features.Side{}, features.Side{}, f.err
	}
	return f.home, f.away, nil
}

func (f *fakeStore) WinRatios(_ context.Context, _, _ string) (features.WinRatios, error) {
	f.ratioCalls++
	if f.err != nil {
		return features.WinRatios{}, f.err
	}
	return f.ratios, nil
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

// identityScaler passes features through unchanged but records the last input.
type identityScaler struct {
	last features.Vector
}

func (s *identityScaler) Transform(v features.Vector) (inference.Scaled, error) {
	s.last = v
	if err := v.Validate(); err != nil {
		return inference.Scaled{}, err
	}
	return inference.Scaled(v.Array()), nil
}

type fixedClassifier struct {
	label      int
	proba      [2]float64
	probaCalls int
}

func (c *fixedClassifier) Predict(inference.Scaled) (int, error) { return c.label, nil }

func (c *fixedClassifier) PredictProba(inference.Scaled) ([2]float64, error) {
	c.probaCalls++
	return c.proba, nil
}

var (
	bosHome = features.Side{FGPct: 0.48, FG3Pct: 0.37, Reb: 45.1, Ast: 26.2, Tov: 12.9, WinRatio: 0.72}
	lalAway = features.Side{FGPct: 0.46, FG3Pct: 0.34, Reb: 42.3, Ast: 24.8, Tov: 14.4, WinRatio: 0.41}
)

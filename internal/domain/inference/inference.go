// Package inference wraps the fitted scaler and classifier behind narrow
// interfaces. Both are treated as opaque, deterministic functions of their input.
package inference

import (
	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/internal/domain/teams"
)

// HomeWin is the class label meaning the home team is predicted to win.
const HomeWin = 1

// Scaled is a feature row after the fitted transform, still in model order.
type Scaled [features.Dim]float64

// Scaler applies the fitted per-feature transform.
type Scaler interface {
	Transform(v features.Vector) (Scaled, error)
}

// Classifier is the fitted binary model.
type Classifier interface {
	// Predict returns the class label; HomeWin means the home side wins.
	Predict(x Scaled) (int, error)
	// PredictProba returns [p_away_win, p_home_win].
	PredictProba(x Scaled) ([2]float64, error)
}

// Outcome is the interpreted classifier output.
type Outcome struct {
	Winner      teams.Side
	Probability *float64
}

// Interpret maps a label and optional class distribution onto a winning side.
// The probability reported is the one for the winning class.
func Interpret(label int, proba *[2]float64) Outcome {
	if label == HomeWin {
		out := Outcome{Winner: teams.Home}
		if proba != nil {
			p := proba[1]
			out.Probability = &p
		}
		return out
	}
	out := Outcome{Winner: teams.Away}
	if proba != nil {
		p := proba[0]
		out.Probability = &p
	}
	return out
}

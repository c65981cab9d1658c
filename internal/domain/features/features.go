// Package features builds the twelve-value input the classifier was fitted on.
//
// The column order is fixed at training time. Vector keeps every column as a
// named field and Array is the only place the positional order is written down.
package features

import (
	"fmt"
	"math"
)

// Dim is the number of model inputs.
const Dim = 12

// Column names, in model order.
var names = [Dim]string{
	"fg_pct_home",
	"fg_pct_away",
	"fg3_pct_home",
	"fg3_pct_away",
	"reb_home",
	"reb_away",
	"ast_home",
	"ast_away",
	"tov_home",
	"tov_away",
	"win_ratio_home",
	"win_ratio_away",
}

// Names returns the column names in model order.
func Names() [Dim]string { return names }

// Side holds the six per-team aggregates for one slot of a matchup.
type Side struct {
	FGPct    float64 `json:"fg_pct"`
	FG3Pct   float64 `json:"fg3_pct"`
	Reb      float64 `json:"reb"`
	Ast      float64 `json:"ast"`
	Tov      float64 `json:"tov"`
	WinRatio float64 `json:"win_ratio"`
}

// Vector is the feature row for a single prediction.
type Vector struct {
	FGPctHome    float64 `json:"fg_pct_home"`
	FGPctAway    float64 `json:"fg_pct_away"`
	FG3PctHome   float64 `json:"fg3_pct_home"`
	FG3PctAway   float64 `json:"fg3_pct_away"`
	RebHome      float64 `json:"reb_home"`
	RebAway      float64 `json:"reb_away"`
	AstHome      float64 `json:"ast_home"`
	AstAway      float64 `json:"ast_away"`
	TovHome      float64 `json:"tov_home"`
	TovAway      float64 `json:"tov_away"`
	WinRatioHome float64 `json:"win_ratio_home"`
	WinRatioAway float64 `json:"win_ratio_away"`
}

// Assemble interleaves independently computed home and away aggregates.
func Assemble(home, away Side) Vector {
	return Vector{
		FGPctHome:    home.FGPct,
		FGPctAway:    away.FGPct,
		FG3PctHome:   home.FG3Pct,
		FG3PctAway:   away.FG3Pct,
		RebHome:      home.Reb,
		RebAway:      away.Reb,
		AstHome:      home.Ast,
		AstAway:      away.Ast,
		TovHome:      home.Tov,
		TovAway:      away.Tov,
		WinRatioHome: home.WinRatio,
		WinRatioAway: away.WinRatio,
	}
}

// Array returns the vector in model order.
func (v Vector) Array() [Dim]float64 {
	return [Dim]float64{
		v.FGPctHome,
		v.FGPctAway,
		v.FG3PctHome,
		v.FG3PctAway,
		v.RebHome,
		v.RebAway,
		v.AstHome,
		v.AstAway,
		v.TovHome,
		v.TovAway,
		v.WinRatioHome,
		v.WinRatioAway,
	}
}

// FromArray is the inverse of Array.
func FromArray(a [Dim]float64) Vector {
	return Vector{
		FGPctHome:    a[0],
		FGPctAway:    a[1],
		FG3PctHome:   a[2],
		FG3PctAway:   a[3],
		RebHome:      a[4],
		RebAway:      a[5],
		AstHome:      a[6],
		AstAway:      a[7],
		TovHome:      a[8],
		TovAway:      a[9],
		WinRatioHome: a[10],
		WinRatioAway: a[11],
	}
}

// Validate rejects NaN and infinite values so they never reach the model.
func (v Vector) Validate() error {
	for i, x := range v.Array() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s=%v: %w", names[i], x, ErrNonFinite)
		}
	}
	return nil
}

// WinRatios are the per-team win fractions fetched for the manual path.
type WinRatios struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

package features_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/courtside/internal/domain/features"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAssemble(t *testing.T) {
	Convey("Given home and away aggregates", t, func() {
		home := features.Side{FGPct: 0.48, FG3Pct: 0.36, Reb: 44, Ast: 26, Tov: 13, WinRatio: 0.7}
		away := features.Side{FGPct: 0.46, FG3Pct: 0.34, Reb: 42, Ast: 24, Tov: 14, WinRatio: 0.4}

		Convey("When assembling the vector", func() {
			v := features.Assemble(home, away)

			Convey("Then the array should interleave home and away in model order", func() {
				So(v.Array(), ShouldResemble, [features.Dim]float64{
					0.48, 0.46, 0.36, 0.34, 44, 42, 26, 24, 13, 14, 0.7, 0.4,
				})
			})

			Convey("And FromArray should round trip", func() {
				So(features.FromArray(v.Array()), ShouldResemble, v)
			})
		})
	})
}

func TestNames(t *testing.T) {
	Convey("Given the column names", t, func() {
		n := features.Names()

		Convey("Then they should follow the model order", func() {
			So(n[0], ShouldEqual, "fg_pct_home")
			So(n[1], ShouldEqual, "fg_pct_away")
			So(n[10], ShouldEqual, "win_ratio_home")
			So(n[11], ShouldEqual, "win_ratio_away")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a vector", t, func() {
		v := features.Assemble(features.Side{FGPct: 0.5}, features.Side{FGPct: 0.5})

		Convey("When every value is finite", func() {
			So(v.Validate(), ShouldBeNil)
		})

		Convey("When a value is NaN", func() {
			v.RebAway = math.NaN()
			err := v.Validate()
			So(errors.Is(err, features.ErrNonFinite), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "reb_away")
		})

		Convey("When a value is infinite", func() {
			v.FG3PctHome = math.Inf(1)
			So(errors.Is(v.Validate(), features.ErrNonFinite), ShouldBeTrue)
		})
	})
}

func TestManualResolve(t *testing.T) {
	Convey("Given the default manual entry", t, func() {
		m := features.DefaultManual()
		ratios := features.WinRatios{Home: 0.6, Away: 0.45}

		Convey("When resolving it", func() {
			v, err := m.Resolve(ratios)

			Convey("Then made equal to attempted should give a percentage of one", func() {
				So(err, ShouldBeNil)
				So(v.FGPctHome, ShouldEqual, 1.0)
				So(v.FG3PctAway, ShouldEqual, 1.0)
			})

			Convey("And counts should pass through unscaled", func() {
				So(v.RebHome, ShouldEqual, 40)
				So(v.AstAway, ShouldEqual, 25)
				So(v.TovHome, ShouldEqual, 15)
			})

			Convey("And win ratios should come from the store", func() {
				So(v.WinRatioHome, ShouldEqual, 0.6)
				So(v.WinRatioAway, ShouldEqual, 0.45)
			})
		})

		Convey("When home field goal attempts are zero", func() {
			m.Home.FG.Attempted = 0
			_, err := m.Resolve(ratios)

			Convey("Then it should be rejected explicitly", func() {
				So(errors.Is(err, features.ErrZeroAttempts), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "home field goals")
			})
		})

		Convey("When away three-point attempts are zero", func() {
			m.Away.FG3 = features.Shooting{}
			_, err := m.Resolve(ratios)
			So(errors.Is(err, features.ErrZeroAttempts), ShouldBeTrue)
		})

		Convey("When more shots are made than attempted", func() {
			m.Home.FG = features.Shooting{Made: 60, Attempted: 50}
			_, err := m.Resolve(ratios)
			So(errors.Is(err, features.ErrInvalidCount), ShouldBeTrue)
		})

		Convey("When a count is negative", func() {
			m.Away.Turnovers = -1
			_, err := m.Resolve(ratios)
			So(errors.Is(err, features.ErrInvalidCount), ShouldBeTrue)
		})

		Convey("When the win ratio is not a number", func() {
			_, err := m.Resolve(features.WinRatios{Home: math.NaN(), Away: 0.5})
			So(errors.Is(err, features.ErrNonFinite), ShouldBeTrue)
		})
	})
}

func TestShootingPct(t *testing.T) {
	Convey("Given a shooting line", t, func() {
		pct, err := features.Shooting{Made: 21, Attempted: 42}.Pct()
		So(err, ShouldBeNil)
		So(pct, ShouldAlmostEqual, 0.5)
	})
}

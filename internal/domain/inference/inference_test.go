package inference_test

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/internal/domain/inference"
	"github.com/okian/courtside/internal/domain/teams"
	. "github.com/smartystreets/goconvey/convey"
)

func ones() []float64 {
	out := make([]float64, features.Dim)
	for i := range out {
		out[i] = 1
	}
	return out
}

func sampleVector() features.Vector {
	return features.Assemble(
		features.Side{FGPct: 0.48, FG3Pct: 0.37, Reb: 45, Ast: 26, Tov: 13, WinRatio: 0.68},
		features.Side{FGPct: 0.45, FG3Pct: 0.33, Reb: 42, Ast: 23, Tov: 15, WinRatio: 0.39},
	)
}

func TestStandardScaler(t *testing.T) {
	Convey("Given a fitted scaler", t, func() {
		mean := []float64{0.47, 0.46, 0.36, 0.35, 44, 43, 25, 24, 13.5, 13.8, 0.56, 0.44}
		scale := []float64{0.02, 0.02, 0.03, 0.03, 2.5, 2.5, 2.2, 2.2, 1.4, 1.4, 0.17, 0.17}
		s, err := inference.NewStandardScaler(mean, scale)
		So(err, ShouldBeNil)

		Convey("When transforming a vector", func() {
			out, err := s.Transform(sampleVector())

			Convey("Then each value should be centered and scaled", func() {
				So(err, ShouldBeNil)
				So(out[0], ShouldAlmostEqual, (0.48-0.47)/0.02)
				So(out[4], ShouldAlmostEqual, (45-44)/2.5)
				So(out[11], ShouldAlmostEqual, (0.39-0.44)/0.17)
			})
		})

		Convey("When two inputs swap values", func() {
			v := sampleVector()
			swapped := v
			swapped.FGPctHome, swapped.RebHome = v.RebHome, v.FGPctHome

			a, _ := s.Transform(v)
			b, _ := s.Transform(swapped)

			Convey("Then the scaled rows should differ", func() {
				So(a, ShouldNotResemble, b)
			})
		})

		Convey("When the vector holds a NaN", func() {
			v := sampleVector()
			v.AstHome = math.NaN()
			_, err := s.Transform(v)
			So(errors.Is(err, features.ErrNonFinite), ShouldBeTrue)
		})
	})

	Convey("Given scaler parameters of the wrong length", t, func() {
		_, err := inference.NewStandardScaler([]float64{1, 2}, ones())
		So(errors.Is(err, inference.ErrShape), ShouldBeTrue)
	})

	Convey("Given a zero scale", t, func() {
		scale := ones()
		scale[3] = 0
		s, err := inference.NewStandardScaler(make([]float64, features.Dim), scale)
		So(err, ShouldBeNil)

		out, err := s.Transform(sampleVector())
		So(err, ShouldBeNil)
		So(out[3], ShouldAlmostEqual, 0.33)
	})
}

func TestLogisticRegression(t *testing.T) {
	Convey("Given a model that favours the home field goal percentage", t, func() {
		coef := make([]float64, features.Dim)
		coef[0] = 2
		m, err := inference.NewLogisticRegression(coef, 0)
		So(err, ShouldBeNil)

		Convey("When the scaled home percentage is positive", func() {
			x := inference.Scaled{1}
			label, err := m.Predict(x)
			So(err, ShouldBeNil)
			So(label, ShouldEqual, inference.HomeWin)

			proba, err := m.PredictProba(x)
			So(err, ShouldBeNil)
			So(proba[1], ShouldBeGreaterThan, 0.5)
			So(proba[0]+proba[1], ShouldAlmostEqual, 1.0)
		})

		Convey("When the scaled home percentage is negative", func() {
			x := inference.Scaled{-1}
			label, err := m.Predict(x)
			So(err, ShouldBeNil)
			So(label, ShouldEqual, 0)

			proba, _ := m.PredictProba(x)
			So(proba[0], ShouldBeGreaterThan, 0.5)
		})

		Convey("When the decision is extreme", func() {
			proba, err := m.PredictProba(inference.Scaled{-1000})
			So(err, ShouldBeNil)
			So(proba[1], ShouldBeBetweenOrEqual, 0, 1)
			So(math.IsNaN(proba[1]), ShouldBeFalse)
		})

		Convey("When the input holds an infinity", func() {
			_, err := m.Predict(inference.Scaled{math.Inf(1)})
			So(errors.Is(err, inference.ErrParameter), ShouldBeTrue)
		})

		Convey("Then repeated calls should be deterministic", func() {
			x := inference.Scaled{0.3, -0.2, 0.1}
			a, _ := m.PredictProba(x)
			b, _ := m.PredictProba(x)
			So(a, ShouldResemble, b)
		})
	})

	Convey("Given coefficients of the wrong length", t, func() {
		_, err := inference.NewLogisticRegression([]float64{1}, 0)
		So(errors.Is(err, inference.ErrShape), ShouldBeTrue)
	})
}

func TestInterpret(t *testing.T) {
	Convey("Given a classifier output", t, func() {
		proba := [2]float64{0.3, 0.7}

		Convey("When the label is the home class", func() {
			out := inference.Interpret(inference.HomeWin, &proba)
			So(out.Winner, ShouldEqual, teams.Home)
			So(*out.Probability, ShouldEqual, 0.7)
		})

		Convey("When the label is anything else", func() {
			out := inference.Interpret(0, &proba)
			So(out.Winner, ShouldEqual, teams.Away)
			So(*out.Probability, ShouldEqual, 0.3)
		})

		Convey("When no distribution was requested", func() {
			out := inference.Interpret(inference.HomeWin, nil)
			So(out.Winner, ShouldEqual, teams.Home)
			So(out.Probability, ShouldBeNil)
		})
	})
}

func TestLoadArtifacts(t *testing.T) {
	Convey("Given the shipped artifacts", t, func() {
		s, sInfo, err := inference.LoadScaler("../../../artifacts/scaler.yaml")
		So(err, ShouldBeNil)
		So(sInfo.Kind, ShouldEqual, inference.KindStandardScaler)

		m, mInfo, err := inference.LoadClassifier("../../../artifacts/model.yaml")
		So(err, ShouldBeNil)
		So(mInfo.Version, ShouldEqual, "2022-season")

		Convey("Then they should produce a distribution for a real row", func() {
			x, err := s.Transform(sampleVector())
			So(err, ShouldBeNil)
			proba, err := m.PredictProba(x)
			So(err, ShouldBeNil)
			So(proba[0]+proba[1], ShouldAlmostEqual, 1.0)
		})
	})

	Convey("Given a JSON scaler document", t, func() {
		path := writeTemp(`{"kind":"standard_scaler","mean":[0,0,0,0,0,0,0,0,0,0,0,0],"scale":[1,1,1,1,1,1,1,1,1,1,1,1]}`)
		defer func() { _ = os.Remove(path) }()

		_, _, err := inference.LoadScaler(path)
		So(err, ShouldBeNil)
	})

	Convey("Given a scaler document with eleven columns", t, func() {
		path := writeTemp(`
kind: standard_scaler
mean: [0,0,0,0,0,0,0,0,0,0,0]
scale: [1,1,1,1,1,1,1,1,1,1,1]
`)
		defer func() { _ = os.Remove(path) }()

		_, _, err := inference.LoadScaler(path)
		So(errors.Is(err, inference.ErrShape), ShouldBeTrue)
	})

	Convey("Given a model document with swapped feature names", t, func() {
		path := writeTemp(`
kind: logistic_regression
feature_names: [fg_pct_away, fg_pct_home, fg3_pct_home, fg3_pct_away, reb_home, reb_away, ast_home, ast_away, tov_home, tov_away, win_ratio_home, win_ratio_away]
coef: [1,1,1,1,1,1,1,1,1,1,1,1]
intercept: 0
`)
		defer func() { _ = os.Remove(path) }()

		_, _, err := inference.LoadClassifier(path)
		So(errors.Is(err, inference.ErrFeatureOrder), ShouldBeTrue)
	})

	Convey("Given a model document with other classes", t, func() {
		path := writeTemp(`
kind: logistic_regression
classes: [1, 0]
coef: [1,1,1,1,1,1,1,1,1,1,1,1]
`)
		defer func() { _ = os.Remove(path) }()

		_, _, err := inference.LoadClassifier(path)
		So(errors.Is(err, inference.ErrClasses), ShouldBeTrue)
	})

	Convey("Given a scaler file passed as the model", t, func() {
		_, _, err := inference.LoadClassifier("../../../artifacts/scaler.yaml")
		So(errors.Is(err, inference.ErrKind), ShouldBeTrue)
	})

	Convey("Given a missing file", t, func() {
		_, _, err := inference.LoadScaler("/non/existent/scaler.yaml")
		So(errors.Is(err, inference.ErrLoadArtifact), ShouldBeTrue)
	})
}

func writeTemp(content string) string {
	f, err := os.CreateTemp("", "courtside-artifact-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}
	return f.Name()
}

package inference

import (
	"fmt"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/okian/courtside/internal/domain/features"
)

// Artifact kinds accepted by the loaders.
const (
	KindStandardScaler     = "standard_scaler"
	KindLogisticRegression = "logistic_regression"
)

// scalerDocument is the interchange form of a fitted scaler.
type scalerDocument struct {
	Kind         string    `koanf:"kind"`
	Version      string    `koanf:"version"`
	FeatureNames []string  `koanf:"feature_names"`
	Mean         []float64 `koanf:"mean"`
	Scale        []float64 `koanf:"scale"`
}

// classifierDocument is the interchange form of a fitted logistic model.
type classifierDocument struct {
	Kind         string    `koanf:"kind"`
	Version      string    `koanf:"version"`
	FeatureNames []string  `koanf:"feature_names"`
	Classes      []int     `koanf:"classes"`
	Coef         []float64 `koanf:"coef"`
	Intercept    float64   `koanf:"intercept"`
}

// Info describes a loaded artifact.
type Info struct {
	Path    string
	Kind    string
	Version string
}

// LoadScaler reads a scaler document (YAML or JSON) and checks it against the
// feature order.
func LoadScaler(path string) (*StandardScaler, Info, error) {
	var doc scalerDocument
	if err := load(path, &doc); err != nil {
		return nil, Info{}, err
	}
	if err := checkKind(doc.Kind, KindStandardScaler); err != nil {
		return nil, Info{}, err
	}
	if err := checkFeatureNames(doc.FeatureNames); err != nil {
		return nil, Info{}, err
	}
	s, err := NewStandardScaler(doc.Mean, doc.Scale)
	if err != nil {
		return nil, Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, Info{Path: path, Kind: KindStandardScaler, Version: doc.Version}, nil
}

// LoadClassifier reads a logistic regression document (YAML or JSON).
func LoadClassifier(path string) (*LogisticRegression, Info, error) {
	var doc classifierDocument
	if err := load(path, &doc); err != nil {
		return nil, Info{}, err
	}
	if err := checkKind(doc.Kind, KindLogisticRegression); err != nil {
		return nil, Info{}, err
	}
	if err := checkFeatureNames(doc.FeatureNames); err != nil {
		return nil, Info{}, err
	}
	if doc.Classes != nil && !slices.Equal(doc.Classes, []int{0, HomeWin}) {
		return nil, Info{}, fmt.Errorf("classes %v: %w", doc.Classes, ErrClasses)
	}
	m, err := NewLogisticRegression(doc.Coef, doc.Intercept)
	if err != nil {
		return nil, Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, Info{Path: path, Kind: KindLogisticRegression, Version: doc.Version}, nil
}

func load(path string, out any) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrLoadArtifact, err)
	}
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrLoadArtifact, err)
	}
	return nil
}

func checkKind(got, want string) error {
	if got != "" && got != want {
		return fmt.Errorf("got %q want %q: %w", got, want, ErrKind)
	}
	return nil
}

// checkFeatureNames enforces the column order when the document declares it.
func checkFeatureNames(got []string) error {
	if got == nil {
		return nil
	}
	want := features.Names()
	if !slices.Equal(got, want[:]) {
		return fmt.Errorf("got %v: %w", got, ErrFeatureOrder)
	}
	return nil
}

package inference

import (
	"fmt"
	"math"

	"github.com/okian/courtside/internal/domain/features"
)

// StandardScaler centers and scales each feature: (x - mean) / scale.
type StandardScaler struct {
	mean  [features.Dim]float64
	scale [features.Dim]float64
}

// NewStandardScaler builds a scaler from fitted parameters. A zero scale is
// treated as one, the convention for constant features.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) != features.Dim || len(scale) != features.Dim {
		return nil, fmt.Errorf("mean=%d scale=%d want %d: %w", len(mean), len(scale), features.Dim, ErrShape)
	}
	s := &StandardScaler{}
	for i := 0; i < features.Dim; i++ {
		if !finite(mean[i]) || !finite(scale[i]) {
			return nil, fmt.Errorf("parameter %d: %w", i, ErrParameter)
		}
		s.mean[i] = mean[i]
		s.scale[i] = scale[i]
		if s.scale[i] == 0 {
			s.scale[i] = 1
		}
	}
	return s, nil
}

// Transform implements Scaler.
func (s *StandardScaler) Transform(v features.Vector) (Scaled, error) {
	if err := v.Validate(); err != nil {
		return Scaled{}, err
	}
	var out Scaled
	for i, x := range v.Array() {
		out[i] = (x - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package features

import "fmt"

// Shooting is a made/attempted pair.
type Shooting struct {
	Made      float64 `json:"made"`
	Attempted float64 `json:"attempted"`
}

// Pct returns made/attempted. Zero attempts is an error rather than a NaN or Inf.
func (s Shooting) Pct() (float64, error) {
	switch {
	case s.Made < 0 || s.Attempted < 0:
		return 0, fmt.Errorf("made=%v attempted=%v: %w", s.Made, s.Attempted, ErrInvalidCount)
	case s.Attempted == 0:
		return 0, ErrZeroAttempts
	case s.Made > s.Attempted:
		return 0, fmt.Errorf("made=%v > attempted=%v: %w", s.Made, s.Attempted, ErrInvalidCount)
	}
	return s.Made / s.Attempted, nil
}

// ManualSide is the box-score input for one team.
type ManualSide struct {
	FG        Shooting `json:"fg"`
	FG3       Shooting `json:"fg3"`
	Rebounds  float64  `json:"rebounds"`
	Assists   float64  `json:"assists"`
	Turnovers float64  `json:"turnovers"`
}

// Manual is a hand-entered game line for both teams.
type Manual struct {
	Home ManualSide `json:"home"`
	Away ManualSide `json:"away"`
}

// DefaultManual returns the values the entry form starts with.
func DefaultManual() Manual {
	side := ManualSide{
		FG:        Shooting{Made: 50, Attempted: 50},
		FG3:       Shooting{Made: 35, Attempted: 35},
		Rebounds:  40,
		Assists:   25,
		Turnovers: 15,
	}
	return Manual{Home: side, Away: side}
}

// Resolve turns the manual entry into a feature vector. Win ratios come from
// the store, not the user.
func (m Manual) Resolve(ratios WinRatios) (Vector, error) {
	home, err := m.Home.side("home", ratios.Home)
	if err != nil {
		return Vector{}, err
	}
	away, err := m.Away.side("away", ratios.Away)
	if err != nil {
		return Vector{}, err
	}
	v := Assemble(home, away)
	if err := v.Validate(); err != nil {
		return Vector{}, err
	}
	return v, nil
}

func (s ManualSide) side(label string, winRatio float64) (Side, error) {
	fg, err := s.FG.Pct()
	if err != nil {
		return Side{}, fmt.Errorf("%s field goals: %w", label, err)
	}
	fg3, err := s.FG3.Pct()
	if err != nil {
		return Side{}, fmt.Errorf("%s three-pointers: %w", label, err)
	}
	if s.Rebounds < 0 || s.Assists < 0 || s.Turnovers < 0 {
		return Side{}, fmt.Errorf("%s counts: %w", label, ErrInvalidCount)
	}
	return Side{
		FGPct:    fg,
		FG3Pct:   fg3,
		Reb:      s.Rebounds,
		Ast:      s.Assists,
		Tov:      s.Turnovers,
		WinRatio: winRatio,
	}, nil
}

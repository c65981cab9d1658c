package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/okian/courtside/internal/domain/features"
)

// TeamsRequest is the body of POST /api/predict/teams.
type TeamsRequest struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// ManualRequest is the body of POST /api/predict/manual. Omitted counts take
// the form's starting values.
type ManualRequest struct {
	Home string `json:"home"`
	Away string `json:"away"`

	FGMadeHome       *float64 `json:"fg_made_home,omitempty" validate:"omitempty,gte=0,lte=100"`
	FGAttemptedHome  *float64 `json:"fg_attempted_home,omitempty" validate:"omitempty,gte=0,lte=100"`
	FG3MadeHome      *float64 `json:"fg3_made_home,omitempty" validate:"omitempty,gte=0,lte=100"`
	FG3AttemptedHome *float64 `json:"fg3_attempted_home,omitempty" validate:"omitempty,gte=0,lte=100"`
	RebHome          *float64 `json:"reb_home,omitempty" validate:"omitempty,gte=0"`
	AstHome          *float64 `json:"ast_home,omitempty" validate:"omitempty,gte=0"`
	TovHome          *float64 `json:"tov_home,omitempty" validate:"omitempty,gte=0"`

	FGMadeAway       *float64 `json:"fg_made_away,omitempty" validate:"omitempty,gte=0,lte=100"`
	FGAttemptedAway  *float64 `json:"fg_attempted_away,omitempty" validate:"omitempty,gte=0,lte=100"`
	FG3MadeAway      *float64 `json:"fg3_made_away,omitempty" validate:"omitempty,gte=0,lte=100"`
	FG3AttemptedAway *float64 `json:"fg3_attempted_away,omitempty" validate:"omitempty,gte=0,lte=100"`
	RebAway          *float64 `json:"reb_away,omitempty" validate:"omitempty,gte=0"`
	AstAway          *float64 `json:"ast_away,omitempty" validate:"omitempty,gte=0"`
	TovAway          *float64 `json:"tov_away,omitempty" validate:"omitempty,gte=0"`
}

// Manual fills a features.Manual, starting from the form defaults.
func (r ManualRequest) Manual() features.Manual {
	m := features.DefaultManual()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&m.Home.FG.Made, r.FGMadeHome)
	set(&m.Home.FG.Attempted, r.FGAttemptedHome)
	set(&m.Home.FG3.Made, r.FG3MadeHome)
	set(&m.Home.FG3.Attempted, r.FG3AttemptedHome)
	set(&m.Home.Rebounds, r.RebHome)
	set(&m.Home.Assists, r.AstHome)
	set(&m.Home.Turnovers, r.TovHome)
	set(&m.Away.FG.Made, r.FGMadeAway)
	set(&m.Away.FG.Attempted, r.FGAttemptedAway)
	set(&m.Away.FG3.Made, r.FG3MadeAway)
	set(&m.Away.FG3.Attempted, r.FG3AttemptedAway)
	set(&m.Away.Rebounds, r.RebAway)
	set(&m.Away.Assists, r.AstAway)
	set(&m.Away.Turnovers, r.TovAway)
	return m
}

// PredictionResponse is the body of a successful prediction.
type PredictionResponse struct {
	ID          string   `json:"id"`
	Home        string   `json:"home"`
	Away        string   `json:"away"`
	Winner      string   `json:"winner"`
	WinnerSide  string   `json:"winner_side"`
	Probability *float64 `json:"probability,omitempty"`
	Message     string   `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks count bounds. Failures wrap ErrBadRequest and name the
// offending JSON field.
func (r ManualRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrBadRequest, strings.Join(msgs, "; "))
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	repository "github.com/okian/courtside/internal/adapters/repository"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/internal/domain/teams"
)

// User-facing messages shared by the JSON API and the form.
const (
	MsgSameTeam         = "Home and Away teams cannot be the same. Please select different teams."
	MsgMissingSelection = "Please select both Home and Away teams."
	MsgNoData           = "No data available for the selected teams."
	MsgNoWinRatios      = "Could not retrieve win ratios for the selected teams."
	MsgInternal         = "An error occurred while making the prediction."
)

// Problem is a pipeline failure translated for a client.
type Problem struct {
	Status  int
	Code    string
	Message string
	// Warning marks selection problems the form shows as a warning rather than an error.
	Warning bool
}

// Describe maps a pipeline error for the given path onto a status, a stable
// code and the message shown to users.
func Describe(path string, err error) Problem {
	switch {
	case errors.Is(err, teams.ErrSameTeam):
		return Problem{Status: http.StatusBadRequest, Code: "same_team", Message: MsgSameTeam, Warning: true}
	case errors.Is(err, teams.ErrMissingSelection):
		return Problem{Status: http.StatusBadRequest, Code: "missing_selection", Message: MsgMissingSelection, Warning: true}
	case errors.Is(err, teams.ErrUnknownTeam):
		return Problem{Status: http.StatusBadRequest, Code: "unknown_team", Message: err.Error(), Warning: true}
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, features.ErrZeroAttempts),
		errors.Is(err, features.ErrInvalidCount),
		errors.Is(err, features.ErrNonFinite):
		return Problem{Status: http.StatusBadRequest, Code: "invalid_input", Message: err.Error()}
	case errors.Is(err, repository.ErrNoData):
		msg := MsgNoData
		if path == service.PathManual {
			msg = MsgNoWinRatios
		}
		return Problem{Status: http.StatusNotFound, Code: "no_data", Message: msg}
	}
	return Problem{Status: http.StatusInternalServerError, Code: "internal_error", Message: MsgInternal}
}

// WinnerMessage is the headline shown for a successful prediction.
func WinnerMessage(res service.Result) string {
	return fmt.Sprintf("🏆 %s is predicted to win!", res.Winner.Code)
}

// ProbabilityMessage is the follow-up line on the database path; empty when
// the result has no probability.
func ProbabilityMessage(res service.Result) string {
	if res.Probability == nil {
		return ""
	}
	return fmt.Sprintf("Probability of winning is: %.2f", *res.Probability)
}

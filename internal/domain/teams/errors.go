package teams

import "errors"

// Sentinel kinds for team selection errors.
var (
	ErrMissingSelection = errors.New("please select both home and away teams")
	ErrSameTeam         = errors.New("home and away teams cannot be the same")
	ErrUnknownTeam      = errors.New("unknown team")
)

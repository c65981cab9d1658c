package features

import "errors"

// Sentinel kinds for feature construction errors.
var (
	ErrZeroAttempts = errors.New("attempted count must be greater than zero")
	ErrInvalidCount = errors.New("invalid count")
	ErrNonFinite    = errors.New("feature is not a finite number")
)

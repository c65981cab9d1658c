package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNoData         = errors.New("no data available for the selected teams")
	ErrQuery          = errors.New("stats query failed")
	ErrUnsupportedURL = errors.New("unsupported database url")
)

package client

import "errors"

// Sentinel kinds for client errors.
var (
	ErrUnreachable = errors.New("service unreachable")
	ErrNoTeam      = errors.New("no home team given")
)

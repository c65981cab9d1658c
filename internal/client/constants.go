package client

import "time"

// HTTP status and defaults used by the CLI.
const (
	StatusOK = 200

	DefaultBaseURL = "http://localhost:8501"
	DefaultTimeout = 10 * time.Second
	DefaultWorkers = 4
)

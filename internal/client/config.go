package client

import (
	"time"

	"github.com/okian/courtside/internal/adapters/http/api"
)

// Config holds the CLI run settings.
type Config struct {
	BaseURL string            // Base URL of the service
	Home    string            // Home team code
	Away    string            // Away team code; ignored when Sweep is set
	Manual  bool              // Use the manual path
	Counts  api.ManualRequest // Manual counts; nil fields keep the form defaults
	Sweep   bool              // Predict Home against every other team
	Workers int               // Concurrent requests during a sweep
	Timeout time.Duration     // HTTP request timeout
	Verbose bool              // Log every request
}

// Matchup is one line of a sweep.
type Matchup struct {
	Home string
	Away string
	Resp api.PredictionResponse
	Err  error
}

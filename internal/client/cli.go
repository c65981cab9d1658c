package client

import (
	"fmt"
	"os"

	"github.com/okian/courtside/pkg/logger"
)

// SetupLogging initializes the global logger for the CLI. Logs go to stderr
// so stdout carries only results.
func SetupLogging(verbose bool) error {
	if err := logger.InitWithFormat(logger.FormatText, os.Stderr); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

// ShowHelp prints usage information for the CLI.
func ShowHelp() {
	os.Stdout.WriteString(`courtside-cli
=============

Predicts basketball game winners through a running courtside service.

Usage:
  courtside-cli -home BOS -away LAL [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8501")
  -home string
        Home team code
  -away string
        Away team code
  -manual
        Predict from entered counts instead of season aggregates
  -fgm-home, -fga-home, -fg3m-home, -fg3a-home, -reb-home, -ast-home, -tov-home float
  -fgm-away, -fga-away, -fg3m-away, -fg3a-away, -reb-away, -ast-away, -tov-away float
        Manual counts; unset flags keep the form defaults
  -sweep
        Predict the home team against every other team
  -workers int
        Concurrent requests during a sweep (default 4)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  courtside-cli -home BOS -away LAL
  courtside-cli -home BOS -away LAL -manual -fgm-home 45 -fga-home 90
  courtside-cli -home DEN -sweep
`)
}

// Package repository reads aggregated team statistics from the historical
// results database. It never writes.
package repository

import (
	"context"

	"github.com/okian/courtside/internal/domain/features"
)

// Store provides read access to season aggregates.
type Store interface {
	// SideAggregates returns the home team's averages over its home games and
	// the away team's averages over its away games, both within the season window.
	// Returns ErrNoData if either team has no qualifying games.
	SideAggregates(ctx context.Context, home, away string) (features.Side, features.Side, error)

	// WinRatios returns the average home-win and away-win indicators over every
	// game in the window where home played at home or away played away.
	// Returns ErrNoData if no games qualify.
	WinRatios(ctx context.Context, home, away string) (features.WinRatios, error)

	// Close releases the underlying connection.
	Close() error
}

package repository

import (
	"time"

	"github.com/okian/courtside/pkg/logger"
)

// Option applies a configuration option to the GormStore.
type Option func(*GormStore)

// WithSeason sets the inclusive game_date window, formatted YYYY-MM-DD.
func WithSeason(start, end string) Option {
	return func(s *GormStore) {
		if start != "" && end != "" {
			s.seasonStart = start
			s.seasonEnd = end
		}
	}
}

// WithQueryTimeout bounds each query.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(s *GormStore) {
		if timeout > 0 {
			s.queryTimeout = timeout
		}
	}
}

// WithLogger sets the logger used for query diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *GormStore) {
		if l != nil {
			s.logger = l
		}
	}
}

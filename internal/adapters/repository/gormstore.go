package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
	"gorm.io/gorm"
)

// Defaults for the season window and query bound.
const (
	DefaultSeasonStart  = "2022-01-01"
	DefaultSeasonEnd    = "2023-01-01"
	defaultQueryTimeout = 5 * time.Second
)

// GormStore implements Store with raw aggregate queries over a shared GORM handle.
type GormStore struct {
	db           *gorm.DB
	seasonStart  string
	seasonEnd    string
	queryTimeout time.Duration
	logger       logger.Logger
}

// New wraps an open GORM handle.
func New(db *gorm.DB, opts ...Option) *GormStore {
	s := &GormStore{
		db:           db,
		seasonStart:  DefaultSeasonStart,
		seasonEnd:    DefaultSeasonEnd,
		queryTimeout: defaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("repository")
	}
	return s
}

// SideAggregates implements Store.
func (s *GormStore) SideAggregates(ctx context.Context, home, away string) (features.Side, features.Side, error) {
	var (
		fgHome, fgAway   sql.NullFloat64
		fg3Home, fg3Away sql.NullFloat64
		rebHome, rebAway sql.NullFloat64
		astHome, astAway sql.NullFloat64
		tovHome, tovAway sql.NullFloat64
		wrHome, wrAway   sql.NullFloat64
	)
	dest := []*sql.NullFloat64{
		&fgHome, &fgAway, &fg3Home, &fg3Away, &rebHome, &rebAway,
		&astHome, &astAway, &tovHome, &tovAway, &wrHome, &wrAway,
	}
	err := s.queryRow(ctx, querySideAggregates, sideAggregatesSQL, dest,
		home, s.seasonStart, s.seasonEnd,
		away, s.seasonStart, s.seasonEnd,
	)
	if err != nil {
		return features.Side{}, features.Side{}, err
	}
	homeSide := features.Side{
		FGPct:    fgHome.Float64,
		FG3Pct:   fg3Home.Float64,
		Reb:      rebHome.Float64,
		Ast:      astHome.Float64,
		Tov:      tovHome.Float64,
		WinRatio: wrHome.Float64,
	}
	awaySide := features.Side{
		FGPct:    fgAway.Float64,
		FG3Pct:   fg3Away.Float64,
		Reb:      rebAway.Float64,
		Ast:      astAway.Float64,
		Tov:      tovAway.Float64,
		WinRatio: wrAway.Float64,
	}
	return homeSide, awaySide, nil
}

// WinRatios implements Store.
func (s *GormStore) WinRatios(ctx context.Context, home, away string) (features.WinRatios, error) {
	var wrHome, wrAway sql.NullFloat64
	err := s.queryRow(ctx, queryWinRatios, winRatiosSQL, []*sql.NullFloat64{&wrHome, &wrAway},
		home, s.seasonStart, s.seasonEnd,
		away, s.seasonStart, s.seasonEnd,
	)
	if err != nil {
		return features.WinRatios{}, err
	}
	return features.WinRatios{Home: wrHome.Float64, Away: wrAway.Float64}, nil
}

// Close implements Store.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// queryRow runs a single-row aggregate. A missing row or any NULL column
// (an aggregate over zero games) is reported as ErrNoData.
func (s *GormStore) queryRow(ctx context.Context, name, query string, dest []*sql.NullFloat64, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	start := time.Now()
	row := s.db.WithContext(ctx).Raw(query, args...).Row()
	scan := make([]any, len(dest))
	for i := range dest {
		scan[i] = dest[i]
	}
	err := row.Scan(scan...)
	metrics.RecordRepositoryQueryLatency(name, float64(time.Since(start).Microseconds())/1000)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.Debug(ctx, "aggregate query returned no rows", logger.String("query", name))
		return ErrNoData
	case err != nil:
		metrics.RecordRepositoryError(name)
		s.logger.Error(ctx, "aggregate query failed", logger.String("query", name), logger.Error(err))
		return fmt.Errorf("%s: %w: %w", name, ErrQuery, err)
	}
	for _, d := range dest {
		if !d.Valid {
			s.logger.Debug(ctx, "aggregate query matched no games", logger.String("query", name))
			return ErrNoData
		}
	}
	return nil
}

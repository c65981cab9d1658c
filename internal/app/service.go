// Package service runs the prediction pipeline that backs the HTTP API, the
// form and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	repository "github.com/okian/courtside/internal/adapters/repository"
	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/internal/domain/inference"
	"github.com/okian/courtside/internal/domain/teams"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
)

// Prediction paths.
const (
	PathTeams  = "teams"
	PathManual = "manual"
)

// Result is a completed prediction.
type Result struct {
	ID          uuid.UUID
	Path        string
	Home        teams.Team
	Away        teams.Team
	Winner      teams.Team
	WinnerSide  teams.Side
	Probability *float64 // nil on the manual path
	CreatedAt   time.Time
}

// pathStats counts outcomes for one prediction path.
type pathStats struct {
	predictions atomic.Int64
	failures    atomic.Int64
	homeWins    atomic.Int64
	awayWins    atomic.Int64
}

func (p *pathStats) snapshot() map[string]int64 {
	return map[string]int64{
		"predictions": p.predictions.Load(),
		"failures":    p.failures.Load(),
		"homeWins":    p.homeWins.Load(),
		"awayWins":    p.awayWins.Load(),
	}
}

// Service implements the prediction pipeline: feature resolution, scaling
// and inference.
type Service struct {
	mu sync.RWMutex

	store      repository.Store
	scaler     inference.Scaler
	classifier inference.Classifier

	started bool
	teams   pathStats
	manual  pathStats

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the aggregate statistics store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithScaler sets the fitted feature scaler.
func WithScaler(scaler inference.Scaler) Option {
	return func(s *Service) {
		s.scaler = scaler
	}
}

// WithClassifier sets the fitted classifier.
func WithClassifier(classifier inference.Classifier) Option {
	return func(s *Service) {
		s.classifier = classifier
	}
}

// New constructs a Service. Dependencies are checked by Start.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start checks that every dependency is wired.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if err := s.checkDependencies(); err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "prediction service started")
	return nil
}

// Stop closes the store. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "closing store failed", logger.Error(err))
		}
	}
	s.started = false
	s.logger.Info(context.Background(), "prediction service stopped")
}

func (s *Service) checkDependencies() error {
	switch {
	case s.store == nil:
		return fmt.Errorf("%w: store", ErrMissingDependency)
	case s.scaler == nil:
		return fmt.Errorf("%w: scaler", ErrMissingDependency)
	case s.classifier == nil:
		return fmt.Errorf("%w: classifier", ErrMissingDependency)
	}
	return nil
}

// PredictFromTeams predicts the winner from season aggregates of both teams.
// The result carries the probability of the winning class.
func (s *Service) PredictFromTeams(ctx context.Context, home, away string) (Result, error) {
	start := time.Now()
	res, err := s.predictFromTeams(ctx, home, away)
	return s.finish(ctx, PathTeams, start, res, err)
}

func (s *Service) predictFromTeams(ctx context.Context, home, away string) (Result, error) {
	if err := s.ready(); err != nil {
		return Result{}, err
	}
	m, err := teams.ParseMatchup(home, away)
	if err != nil {
		return Result{}, err
	}
	homeSide, awaySide, err := s.store.SideAggregates(ctx, m.Home.Code, m.Away.Code)
	if err != nil {
		return Result{}, fmt.Errorf("resolve features: %w", err)
	}
	v := features.Assemble(homeSide, awaySide)
	if err := v.Validate(); err != nil {
		return Result{}, err
	}
	x, err := s.scaler.Transform(v)
	if err != nil {
		return Result{}, fmt.Errorf("scale features: %w", err)
	}
	label, err := s.classifier.Predict(x)
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	proba, err := s.classifier.PredictProba(x)
	if err != nil {
		return Result{}, fmt.Errorf("predict probability: %w", err)
	}
	return newResult(PathTeams, m, inference.Interpret(label, &proba)), nil
}

// PredictFromManual predicts the winner from entered box-score counts. Win
// ratios still come from the store. No probability is reported.
func (s *Service) PredictFromManual(ctx context.Context, home, away string, in features.Manual) (Result, error) {
	start := time.Now()
	res, err := s.predictFromManual(ctx, home, away, in)
	return s.finish(ctx, PathManual, start, res, err)
}

func (s *Service) predictFromManual(ctx context.Context, home, away string, in features.Manual) (Result, error) {
	if err := s.ready(); err != nil {
		return Result{}, err
	}
	m, err := teams.ParseMatchup(home, away)
	if err != nil {
		return Result{}, err
	}
	ratios, err := s.store.WinRatios(ctx, m.Home.Code, m.Away.Code)
	if err != nil {
		return Result{}, fmt.Errorf("resolve win ratios: %w", err)
	}
	v, err := in.Resolve(ratios)
	if err != nil {
		return Result{}, err
	}
	x, err := s.scaler.Transform(v)
	if err != nil {
		return Result{}, fmt.Errorf("scale features: %w", err)
	}
	label, err := s.classifier.Predict(x)
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	return newResult(PathManual, m, inference.Interpret(label, nil)), nil
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

func newResult(path string, m teams.Matchup, out inference.Outcome) Result {
	return Result{
		ID:          uuid.New(),
		Path:        path,
		Home:        m.Home,
		Away:        m.Away,
		Winner:      m.Team(out.Winner),
		WinnerSide:  out.Winner,
		Probability: out.Probability,
		CreatedAt:   time.Now().UTC(),
	}
}

// finish records metrics, counters and the log line for one pipeline run.
func (s *Service) finish(ctx context.Context, path string, start time.Time, res Result, err error) (Result, error) {
	elapsed := time.Since(start)
	metrics.RecordPipelineLatency(path, float64(elapsed.Microseconds())/1000)

	st := s.statsFor(path)
	if err != nil {
		kind := ErrorKind(err)
		st.failures.Add(1)
		metrics.RecordPredictionError(path, kind)
		s.log().Warn(ctx, "prediction failed",
			logger.String("path", path),
			logger.String("kind", kind),
			logger.Error(err),
		)
		return Result{}, err
	}

	st.predictions.Add(1)
	if res.WinnerSide == teams.Home {
		st.homeWins.Add(1)
	} else {
		st.awayWins.Add(1)
	}
	metrics.RecordPrediction(path, string(res.WinnerSide))

	fields := []logger.Field{
		logger.String("id", res.ID.String()),
		logger.String("path", path),
		logger.String("home", res.Home.Code),
		logger.String("away", res.Away.Code),
		logger.String("winner", res.Winner.Code),
		logger.Duration("elapsed", elapsed),
	}
	if res.Probability != nil {
		fields = append(fields, logger.Float64("probability", *res.Probability))
	}
	s.log().Info(ctx, "prediction completed", fields...)
	return res, nil
}

func (s *Service) statsFor(path string) *pathStats {
	if path == PathManual {
		return &s.manual
	}
	return &s.teams
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Named("service")
	}
	return s.logger
}

// ErrorKind classifies a pipeline error for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, teams.ErrMissingSelection),
		errors.Is(err, teams.ErrSameTeam),
		errors.Is(err, teams.ErrUnknownTeam):
		return "selection"
	case errors.Is(err, features.ErrZeroAttempts),
		errors.Is(err, features.ErrInvalidCount),
		errors.Is(err, features.ErrNonFinite):
		return "invalid_input"
	case errors.Is(err, repository.ErrNoData):
		return "no_data"
	case errors.Is(err, repository.ErrQuery):
		return "query"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	case errors.Is(err, ErrNotStarted):
		return "not_started"
	}
	return "internal"
}

// GetStats returns per-path prediction counters for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()

	return map[string]interface{}{
		"started":  started,
		PathTeams:  s.teams.snapshot(),
		PathManual: s.manual.snapshot(),
	}
}

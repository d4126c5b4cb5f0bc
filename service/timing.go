package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dnldd/timing/dashboard"
	"github.com/dnldd/timing/fetch"
	"github.com/dnldd/timing/indicator"
	"github.com/dnldd/timing/score"
	"github.com/dnldd/timing/shared"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// TimingConfig represents the configuration struct for the timing service.
type TimingConfig struct {
	// Symbols represents the tracked symbols.
	Symbols []string
	// FMPAPIKey is the FMP service API Key.
	FMPAPIKey string
	// HistoryPath is an optional filepath to captured daily history,
	// replacing the live provider when set.
	HistoryPath string
	// ListenAddr is the address the dashboard listens on.
	ListenAddr string
	// RefreshInterval is the interval between history refreshes.
	RefreshInterval time.Duration
	// Weights are the signal weights for the composite timing score.
	Weights score.Weights
	// RankMode selects the percentile rank population.
	RankMode indicator.RankMode
	// Cancel is the context cancellation function.
	Cancel context.CancelFunc
}

// Validate asserts the config sane inputs.
func (cfg *TimingConfig) Validate() error {
	var errs error

	if len(cfg.Symbols) == 0 {
		errs = errors.Join(errs, fmt.Errorf("no symbols provided for timing service"))
	}
	if cfg.HistoryPath == "" && cfg.FMPAPIKey == "" {
		errs = errors.Join(errs, fmt.Errorf("fmp api key cannot be an empty string"))
	}
	if cfg.ListenAddr == "" {
		errs = errors.Join(errs, fmt.Errorf("listen address cannot be an empty string"))
	}
	if cfg.RefreshInterval <= 0 {
		errs = errors.Join(errs, fmt.Errorf("refresh interval must be positive"))
	}
	if cfg.Cancel == nil {
		errs = errors.Join(errs, fmt.Errorf("context cancellation function cannot be nil"))
	}
	if err := cfg.Weights.Validate(); err != nil {
		errs = errors.Join(errs, err)
	}

	return errs
}

// Timing represents the options timing score service.
type Timing struct {
	cfg          *TimingConfig
	fetchManager *fetch.Manager
	server       *dashboard.Server
	metrics      *dashboard.Metrics
	scoreCfg     *score.Config
	logger       *zerolog.Logger
	wg           sync.WaitGroup
}

// NewTiming initializes a new timing service.
func NewTiming(cfg *TimingConfig) (*Timing, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating timing service config: %w", err)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger := log.With().Str("service", "timing").Logger()
	metrics := dashboard.NewMetrics()

	svc := &Timing{
		cfg:     cfg,
		metrics: metrics,
		logger:  &logger,
		scoreCfg: &score.Config{
			Weights:  cfg.Weights,
			RankMode: cfg.RankMode,
		},
	}

	var fetcher shared.HistoryFetcher
	switch {
	case cfg.HistoryPath != "":
		fetcher, err = fetch.NewFileSource(cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("creating file history source: %w", err)
		}
	default:
		fetcher = fetch.NewFMPClient(&fetch.FMPConfig{
			APIKey:  cfg.FMPAPIKey,
			BaseURL: fetch.DefaultBaseURL,
		})
	}

	fetchMgrLogger := logger.With().Str("component", "fetchmanager").Logger()
	fetchMgr, err := fetch.NewManager(&fetch.ManagerConfig{
		Fetcher:         fetcher,
		Symbols:         cfg.Symbols,
		RefreshInterval: cfg.RefreshInterval,
		DeliverHistory:  svc.handleHistory,
		RecordFetchError: func(symbol string) {
			metrics.FetchErrors.WithLabelValues(symbol).Inc()
		},
		Logger: &fetchMgrLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating fetch manager: %w", err)
	}

	serverLogger := logger.With().Str("component", "dashboard").Logger()
	server, err := dashboard.NewServer(&dashboard.ServerConfig{
		ListenAddr: cfg.ListenAddr,
		Metrics:    metrics,
		Logger:     &serverLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating dashboard server: %w", err)
	}

	svc.fetchManager = fetchMgr
	svc.server = server

	return svc, nil
}

// handleHistory scores the provided refreshed history and publishes the
// result to the dashboard. A failing symbol only loses its own update.
func (s *Timing) handleHistory(symbol string, candles []shared.Candlestick) {
	runID := uuid.New().String()

	start := time.Now()
	scored, err := score.Compute(candles, s.scoreCfg)
	if err != nil {
		s.logger.Error().Str("run", runID).Msgf("scoring %s: %v", symbol, err)
		return
	}

	s.metrics.ComputeDuration.Observe(time.Since(start).Seconds())
	s.metrics.Refreshes.WithLabelValues(symbol).Inc()
	s.metrics.TimingScore.WithLabelValues(symbol).Set(scored.Latest.TimingScore)
	s.metrics.Percentile.WithLabelValues(symbol).Set(scored.Latest.Percentile)

	s.server.UpdateSeries(scored)

	s.logger.Info().Str("run", runID).Msgf("%s: score %.1f, percentile %.1f, signal %s (%d bars)",
		symbol, scored.Latest.TimingScore, scored.Latest.Percentile,
		scored.Latest.Signal.String(), len(scored.Rows))
}

// Run handles the lifecycle processes of the timing service.
func (s *Timing) Run(ctx context.Context) {
	s.wg.Add(2)

	go func() {
		defer s.wg.Done()

		err := s.fetchManager.Run(ctx)
		if err != nil {
			s.logger.Error().Msgf("running fetch manager: %v", err)
			s.cfg.Cancel()
		}
	}()

	go func() {
		defer s.wg.Done()

		err := s.server.Run(ctx)
		if err != nil {
			s.logger.Error().Msgf("running dashboard server: %v", err)
			s.cfg.Cancel()
		}
	}()

	s.wg.Wait()
}

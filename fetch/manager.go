package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dnldd/timing/shared"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

const (
	// historyYears is the trailing window of daily history fetched per
	// symbol.
	historyYears = 1
)

// ManagerConfig represents the configuration for the fetch manager.
type ManagerConfig struct {
	// Fetcher is the daily market history fetcher.
	Fetcher shared.HistoryFetcher
	// Symbols represents the tracked symbols.
	Symbols []string
	// RefreshInterval is the interval between history refreshes.
	RefreshInterval time.Duration
	// DeliverHistory relays the provided refreshed history for processing.
	DeliverHistory func(symbol string, candles []shared.Candlestick)
	// RecordFetchError records a fetch error for the provided symbol.
	RecordFetchError func(symbol string)
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *ManagerConfig) Validate() error {
	var errs error

	if cfg.Fetcher == nil {
		errs = errors.Join(errs, fmt.Errorf("history fetcher cannot be nil"))
	}
	if len(cfg.Symbols) == 0 {
		errs = errors.Join(errs, fmt.Errorf("no symbols provided for fetch manager"))
	}
	if cfg.RefreshInterval <= 0 {
		errs = errors.Join(errs, fmt.Errorf("refresh interval must be positive"))
	}
	if cfg.DeliverHistory == nil {
		errs = errors.Join(errs, fmt.Errorf("deliver history function cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Manager periodically refreshes the daily history of the tracked symbols,
// isolating failures per symbol.
type Manager struct {
	cfg              *ManagerConfig
	jobScheduler     gocron.Scheduler
	lastRefreshed    map[string]time.Time
	lastRefreshedMtx sync.RWMutex
}

// NewManager initializes the fetch manager.
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating fetch manager config: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating job scheduler: %w", err)
	}

	mgr := &Manager{
		cfg:           cfg,
		jobScheduler:  scheduler,
		lastRefreshed: make(map[string]time.Time),
	}

	return mgr, nil
}

// refresh fetches fresh trailing history for the provided symbol and
// delivers it for processing.
func (m *Manager) refresh(ctx context.Context, symbol string) error {
	now := time.Now().UTC()
	start := now.AddDate(-historyYears, 0, 0)

	candles, err := m.cfg.Fetcher.FetchDailyHistory(ctx, symbol, start, now)
	if err != nil {
		return err
	}

	m.cfg.DeliverHistory(symbol, candles)

	m.lastRefreshedMtx.Lock()
	m.lastRefreshed[symbol] = now
	m.lastRefreshedMtx.Unlock()

	return nil
}

// LastRefreshed returns the time the provided symbol last refreshed.
func (m *Manager) LastRefreshed(symbol string) time.Time {
	m.lastRefreshedMtx.RLock()
	defer m.lastRefreshedMtx.RUnlock()

	return m.lastRefreshed[symbol]
}

// RefreshAll fetches fresh history for every tracked symbol. A failing
// symbol is logged and skipped, the remaining symbols still refresh.
func (m *Manager) RefreshAll(ctx context.Context) {
	for idx := range m.cfg.Symbols {
		symbol := m.cfg.Symbols[idx]

		err := m.refresh(ctx, symbol)
		if err != nil {
			if m.cfg.RecordFetchError != nil {
				m.cfg.RecordFetchError(symbol)
			}
			m.cfg.Logger.Error().Msgf("refreshing %s: %v", symbol, err)
		}
	}
}

// Run manages the lifecycle processes of the fetch manager.
func (m *Manager) Run(ctx context.Context) error {
	m.RefreshAll(ctx)

	_, err := m.jobScheduler.NewJob(
		gocron.DurationJob(m.cfg.RefreshInterval),
		gocron.NewTask(func() {
			m.RefreshAll(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("scheduling history refreshes: %w", err)
	}

	m.jobScheduler.Start()

	<-ctx.Done()

	err = m.jobScheduler.Shutdown()
	if err != nil {
		return fmt.Errorf("shutting down job scheduler: %w", err)
	}

	return nil
}

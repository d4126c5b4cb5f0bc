package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/dnldd/timing/score"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const (
	// shutdownTimeout bounds the graceful shutdown of the http server.
	shutdownTimeout = time.Second * 5
)

// ServerConfig represents the configuration for the dashboard server.
type ServerConfig struct {
	// ListenAddr is the address the dashboard listens on.
	ListenAddr string
	// Metrics is the shared metrics registry.
	Metrics *Metrics
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *ServerConfig) Validate() error {
	var errs error

	if cfg.ListenAddr == "" {
		errs = errors.Join(errs, fmt.Errorf("listen address cannot be an empty string"))
	}
	if cfg.Metrics == nil {
		errs = errors.Join(errs, fmt.Errorf("metrics registry cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Server serves scored series to dashboard consumers.
type Server struct {
	cfg      *ServerConfig
	router   *mux.Router
	server   *http.Server
	store    map[string]*score.ScoredSeries
	storeMtx sync.RWMutex
}

// NewServer initializes the dashboard server.
func NewServer(cfg *ServerConfig) (*Server, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating dashboard server config: %w", err)
	}

	srv := &Server{
		cfg:    cfg,
		router: mux.NewRouter(),
		store:  make(map[string]*score.ScoredSeries),
	}

	srv.router.HandleFunc("/", srv.handleDashboard).Methods(http.MethodGet)
	srv.router.HandleFunc("/healthz", srv.handleHealth).Methods(http.MethodGet)
	srv.router.HandleFunc("/api/symbols", srv.handleSymbols).Methods(http.MethodGet)
	srv.router.HandleFunc("/api/scores/{symbol}", srv.handleScores).Methods(http.MethodGet)
	srv.router.HandleFunc("/api/scores/{symbol}/latest", srv.handleLatest).Methods(http.MethodGet)
	srv.router.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	srv.server = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.router,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	}

	return srv, nil
}

// UpdateSeries publishes the provided scored series for its symbol,
// replacing the previous snapshot.
func (s *Server) UpdateSeries(scored *score.ScoredSeries) {
	s.storeMtx.Lock()
	s.store[scored.Symbol] = scored
	s.storeMtx.Unlock()
}

// fetchSeries returns the published scored series for the provided symbol.
func (s *Server) fetchSeries(symbol string) (*score.ScoredSeries, bool) {
	s.storeMtx.RLock()
	defer s.storeMtx.RUnlock()

	scored, ok := s.store[symbol]
	return scored, ok
}

// fetchSymbols returns the published symbols in a stable order.
func (s *Server) fetchSymbols() []string {
	s.storeMtx.RLock()
	defer s.storeMtx.RUnlock()

	symbols := make([]string, 0, len(s.store))
	for symbol := range s.store {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	return symbols
}

// writeJSON writes the provided payload as a json response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		s.cfg.Logger.Error().Msgf("encoding response: %v", err)
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSymbols serves the published symbols.
func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.fetchSymbols())
}

// handleScores serves the full scored history for a symbol.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	scored, ok := s.fetchSeries(symbol)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("no scores for symbol %s", symbol)})
		return
	}

	s.writeJSON(w, http.StatusOK, scored)
}

// handleLatest serves the latest scored snapshot for a symbol.
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	scored, ok := s.fetchSeries(symbol)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("no scores for symbol %s", symbol)})
		return
	}

	s.writeJSON(w, http.StatusOK, scored.Latest)
}

// handleDashboard renders the gauge and history charts for every published
// symbol.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	symbols := s.fetchSymbols()

	series := make([]*score.ScoredSeries, 0, len(symbols))
	for idx := range symbols {
		scored, ok := s.fetchSeries(symbols[idx])
		if !ok {
			continue
		}
		series = append(series, scored)
	}

	err := renderDashboard(w, series)
	if err != nil {
		s.cfg.Logger.Error().Msgf("rendering dashboard: %v", err)
		http.Error(w, "rendering dashboard failed", http.StatusInternalServerError)
	}
}

// Run manages the lifecycle processes of the dashboard server.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("serving dashboard: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutting down dashboard server: %w", err)
	}

	return nil
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/visl/parking-test/pkg/config"
	"github.com/visl/parking-test/pkg/parking"
)

// Server serves one parking grid over HTTP.
type Server struct {
	cfg    config.ServerConfig
	logger *slog.Logger

	registry *prometheus.Registry
	metrics  *parking.Metrics

	// mu serializes all grid access; the engine itself is
	// single-threaded.
	mu       sync.Mutex
	grid     *parking.Grid
	engine   *parking.Engine
	renderer *parking.Renderer

	httpServer   *http.Server
	shutdownOnce sync.Once
}

// New builds a server and its grid from the configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg.Server,
		logger: logger,
	}

	if !cfg.Server.DisableMetrics {
		s.registry = prometheus.NewRegistry()
		s.metrics = parking.NewMetrics(s.registry)
	}

	if err := s.buildGrid(cfg.Parking); err != nil {
		return nil, err
	}
	return s, nil
}

// buildGrid constructs a fresh grid from the layout. Caller holds no
// lock during New; ApplyLayout takes it.
func (s *Server) buildGrid(layout config.ParkingConfig) error {
	builder := parking.NewBuilder().WithSquareSize(layout.LaneSize)
	for _, i := range layout.PedestrianExits {
		builder.WithPedestrianExit(i)
	}
	for _, i := range layout.DisabledBays {
		builder.WithDisabledBay(i)
	}

	grid, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build parking grid: %w", err)
	}

	s.grid = grid
	s.engine = parking.NewEngine(grid).WithMetrics(s.metrics)
	s.renderer = parking.NewRenderer(grid)

	s.logger.Info("parking grid built",
		"lane_size", grid.LaneSize(),
		"total_bays", grid.Total(),
		"pedestrian_exits", len(grid.PedestrianExits()),
		"available", grid.AvailableBays(),
	)
	return nil
}

// ApplyLayout replaces the grid with a new layout. The swap happens only
// while no vehicle is parked: the grid has no persistence, so replacing
// an occupied grid would silently drop vehicles.
func (s *Server) ApplyLayout(layout config.ParkingConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid.ParkedCars() > 0 {
		s.logger.Warn("layout change deferred: grid is occupied, restart to apply",
			"parked_cars", s.grid.ParkedCars(),
		)
		return fmt.Errorf("grid has %d parked cars", s.grid.ParkedCars())
	}
	return s.buildGrid(layout)
}

// Handler returns the full route and middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/park", s.handlePark)
	mux.HandleFunc("/api/v1/unpark", s.handleUnpark)
	mux.HandleFunc("/api/v1/capacity", s.handleCapacity)
	mux.HandleFunc("/api/v1/diagram", s.handleDiagram)
	mux.HandleFunc("/healthz", s.handleHealth)

	if s.registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	var handler http.Handler = mux
	handler = loggingMiddleware(s.logger, handler)
	handler = requestIDMiddleware(handler)
	handler = recoveryMiddleware(s.logger, handler)
	return handler
}

// Start runs the HTTP server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.ListenAddress,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting parking server", "address", s.cfg.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.httpServer == nil {
			return
		}

		s.logger.Info("initiating graceful shutdown", "timeout", s.cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}

		s.logger.Info("parking server stopped")
	})

	return shutdownErr
}

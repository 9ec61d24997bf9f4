// Package service wires the edge router and the ops surface into running
// HTTP listeners.
package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/okian/edgegate/internal/adapters/http/api"
	"github.com/okian/edgegate/internal/adapters/http/site"
	"github.com/okian/edgegate/internal/adapters/http/swagger"
	"github.com/okian/edgegate/internal/config"
	"github.com/okian/edgegate/pkg/logger"
	"github.com/okian/edgegate/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Service owns the public router listener and the optional ops listener.
type Service struct {
	mu sync.Mutex

	cfg     *config.Config
	logger  logger.Logger
	metrics *metrics.Manager
	now     func() time.Time

	router *api.Server

	// State
	started   bool
	public    *http.Server
	ops       *http.Server
	publicLn  net.Listener
	opsLn     net.Listener
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	serveErrs chan error
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

// WithConfig sets the loaded configuration. Defaults to config.New().
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithClock replaces time.Now for the router's health timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics sets the metrics manager shared by the router and /metrics.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// newMetrics labels every series with the deployment environment. Recording
// is off when no ops listener would expose it.
func newMetrics(cfg *config.Config) *metrics.Manager {
	return metrics.NewManager(
		metrics.WithConstLabel("environment", cfg.Environment),
		metrics.WithMetricsEnabled(cfg.MetricsAddr != ""),
		metrics.WithPrometheusRegistry(prometheus.NewRegistry()),
	)
}

// New constructs the service and its router from the given options.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: config.New(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.metrics == nil {
		s.metrics = newMetrics(s.cfg)
	}

	s.router = api.NewServer(s.cfg.Bindings(),
		api.WithLogger(s.logger.Named("router")),
		api.WithMetrics(s.metrics),
		api.WithClock(s.now),
	)
	return s
}

// Handler returns the public router.
func (s *Service) Handler() http.Handler {
	return s.router.Handler()
}

// OpsHandler assembles the ops mux: Prometheus exposition, API docs and the
// token catalog.
func (s *Service) OpsHandler(ctx context.Context) (http.Handler, error) {
	promHandler, err := s.metrics.Handler()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpsHandler, err)
	}
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promHandler)
	swagger.Register(ctx, mux)
	site.Register(ctx, mux)
	return mux, nil
}

// Start binds the listeners and begins serving. Calling Start on a running
// service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	var opsHandler http.Handler
	if s.cfg.MetricsAddr != "" {
		h, err := s.OpsHandler(ctx)
		if err != nil {
			return err
		}
		opsHandler = h
	}

	publicLn, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrListen, s.cfg.Addr, err)
	}
	var opsLn net.Listener
	if opsHandler != nil {
		opsLn, err = net.Listen("tcp", s.cfg.MetricsAddr)
		if err != nil {
			_ = publicLn.Close()
			return fmt.Errorf("%w: %s: %w", ErrListen, s.cfg.MetricsAddr, err)
		}
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.serveErrs = make(chan error, 2)
	s.publicLn, s.opsLn = publicLn, opsLn

	s.public = newHTTPServer(s.router.Handler())
	s.serve(runCtx, "public", s.public, publicLn)
	if opsLn != nil {
		s.ops = newHTTPServer(opsHandler)
		s.serve(runCtx, "ops", s.ops, opsLn)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		runSystemMetricsUpdater(runCtx, s.metrics, systemMetricsInterval)
	}()

	s.started = true
	s.logger.Info(ctx, "edgegate service started",
		logger.String("addr", publicLn.Addr().String()),
		logger.String("metrics_addr", s.cfg.MetricsAddr),
		logger.String("environment", s.cfg.Environment),
		logger.Bool("api_key_configured", s.cfg.APIKey.Configured()),
	)
	return nil
}

func newHTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func (s *Service) serve(ctx context.Context, name string, srv *http.Server, ln net.Listener) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info(ctx, "starting HTTP server", logger.String("listener", name), logger.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "HTTP server failed", logger.String("listener", name), logger.Error(err))
			s.serveErrs <- fmt.Errorf("%s listener: %w", name, err)
		}
	}()
}

// Errors reports listeners that stopped serving on their own.
func (s *Service) Errors() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serveErrs
}

// Addr returns the bound public address, or "" before Start.
func (s *Service) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.publicLn == nil {
		return ""
	}
	return s.publicLn.Addr().String()
}

// OpsAddr returns the bound ops address, or "" when the ops listener is off.
func (s *Service) OpsAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opsLn == nil {
		return ""
	}
	return s.opsLn.Addr().String()
}

// Stop drains both listeners within ctx's deadline.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.logger.Info(ctx, "stopping edgegate service...")

	var errs []error
	for _, srv := range []*http.Server{s.public, s.ops} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrShutdown, err))
		}
	}
	s.cancel()
	s.wg.Wait()

	s.started = false
	s.public, s.ops = nil, nil
	s.publicLn, s.opsLn = nil, nil
	s.logger.Info(ctx, "edgegate service stopped")
	return errors.Join(errs...)
}

// GetStats returns service state for diagnostics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"started":          s.started,
		"environment":      s.cfg.Environment,
		"apiVersion":       s.cfg.APIVersion,
		"opsEnabled":       s.cfg.MetricsAddr != "",
		"bindingsPresence": s.cfg.Bindings().Presence(),
	}
}

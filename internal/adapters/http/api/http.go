// Package api implements the public edge router: a fixed route table, the
// shared-secret gate on the /api prefix, and JSON responses.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/okian/edgegate/internal/config"
	"github.com/okian/edgegate/pkg/logger"
	"github.com/okian/edgegate/pkg/metrics"
)

// Gate settings.
const (
	// APIKeyHeader carries the shared secret for gated routes.
	APIKeyHeader = "X-API-Key"

	gatedPrefix = "/api"
)

// Route names double as the endpoint metric label.
const (
	routeRoot           = "root"
	routeEnvInfo        = "env_info"
	routeProtected      = "protected"
	routeDatabaseStatus = "database_status"
	routeHealth         = "health"
	routeNotFound       = "not_found"
)

// handlerFunc is a route handler. A returned error is an unhandled fault and
// becomes a generic 500.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

type route struct {
	method string
	path   string
	name   string
	handle handlerFunc
}

// Server wires HTTP routes for the public router.
type Server struct {
	env     config.Bindings
	log     logger.Logger
	metrics *metrics.Manager
	now     func() time.Time

	routes  []route
	handler http.Handler
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used for faults and gate decisions.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to a manager on its own registry.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock replaces time.Now for the /health timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// NewServer creates the router for the given immutable bindings.
func NewServer(env config.Bindings, opts ...Option) *Server {
	s := &Server{
		env: env,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Named("router")
	}
	if s.metrics == nil {
		s.metrics = metrics.NewManager()
	}

	// Evaluated in order; first exact (method, path) match wins.
	s.routes = []route{
		{method: http.MethodGet, path: "/", name: routeRoot, handle: s.handleRoot},
		{method: http.MethodGet, path: "/env-info", name: routeEnvInfo, handle: s.handleEnvInfo},
		{method: http.MethodGet, path: "/api/protected", name: routeProtected, handle: s.handleProtected},
		{method: http.MethodGet, path: "/api/database-status", name: routeDatabaseStatus, handle: s.handleDatabaseStatus},
		{method: http.MethodGet, path: "/health", name: routeHealth, handle: s.handleHealth},
	}

	s.handler = Chain(http.HandlerFunc(s.dispatch), RequestID())
	return s
}

// Handler returns the root handler of the router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Register attaches the router to mux as its catch-all handler.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", s.handler)
}

// dispatch resolves the route, then runs metrics -> gate -> recovery -> handler.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w = headWriter{w}
	}

	name, handle := routeNotFound, handlerFunc(s.handleNotFound)
	if rt, ok := s.match(r.Method, r.URL.Path); ok {
		name, handle = rt.name, rt.handle
	}

	next := s.recoverer(handle)
	if isGated(r.URL.Path) {
		next = s.gate(next)
	}
	MetricsMiddleware(s.metrics, next, name).ServeHTTP(w, r)
}

// match finds the route for method and path. HEAD resolves to the GET route.
func (s *Server) match(method, path string) (route, bool) {
	if method == http.MethodHead {
		method = http.MethodGet
	}
	for _, rt := range s.routes {
		if rt.method == method && rt.path == path {
			return rt, true
		}
	}
	return route{}, false
}

// isGated reports whether path falls under the protected prefix.
func isGated(path string) bool {
	return path == gatedPrefix || strings.HasPrefix(path, gatedPrefix+"/")
}

// headWriter keeps status and headers of a GET handler but drops its body.
type headWriter struct {
	http.ResponseWriter
}

func (w headWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// Package metrics provides Prometheus metrics for the edgegate router.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the edgegate service.
type Manager struct {
	enabled     bool
	constLabels prometheus.Labels
	registry    prometheus.Registerer

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Gate and fault metrics
	gateRejections    prometheus.Counter
	unhandledFaults   prometheus.Counter
	misconfigurations *prometheus.CounterVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Metric name prefixes. System metrics use the "system" subsystem.
const (
	namespace = "edgegate"
	subsystem = "router"
)

// DefaultLatencyBuckets bound latency histograms in milliseconds, from
// sub-millisecond edge responses up to one second.
var DefaultLatencyBuckets = []float64{0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000} //nolint:gochecknoglobals // read-only default

// NewManager creates a metrics manager. Without WithPrometheusRegistry the
// collectors go to a fresh registry, which keeps the Go runtime collectors
// of the default registerer out of /metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		enabled:     true,
		constLabels: prometheus.Labels{},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := m.constLabels

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by route, method and status code",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "Histogram of HTTP request latency in milliseconds",
		Buckets:     DefaultLatencyBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.gateRejections = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "gate_rejections_total",
		Help:        "Requests rejected by the shared-secret gate",
		ConstLabels: labels,
	})

	m.unhandledFaults = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "unhandled_faults_total",
		Help:        "Handler errors and panics converted to a generic 500",
		ConstLabels: labels,
	})

	m.misconfigurations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "misconfigurations_total",
		Help:        "Requests that hit a missing dependency configuration",
		ConstLabels: labels,
	}, []string{"dependency"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "errors_by_type_total",
		Help:        "Total number of errors by type and severity",
		ConstLabels: labels,
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "errors_by_endpoint_total",
		Help:        "Total number of errors by endpoint, method and type",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "error_type"})

	m.errorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "error_latency_milliseconds",
		Help:        "Latency of requests that ended in an error",
		Buckets:     DefaultLatencyBuckets,
		ConstLabels: labels,
	}, []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "system",
		Name:        "memory_usage_bytes",
		Help:        "Current heap allocation in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "system",
		Name:        "goroutines",
		Help:        "Current number of goroutines",
		ConstLabels: labels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   "system",
		Name:        "gc_pause_milliseconds",
		Help:        "Average GC pause time in milliseconds",
		Buckets:     DefaultLatencyBuckets,
		ConstLabels: labels,
	})
}

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordGateRejection increments the gate rejection counter.
func (m *Manager) RecordGateRejection() {
	if !m.enabled {
		return
	}
	m.gateRejections.Inc()
}

// RecordUnhandledFault increments the unhandled fault counter.
func (m *Manager) RecordUnhandledFault() {
	if !m.enabled {
		return
	}
	m.unhandledFaults.Inc()
}

// RecordMisconfiguration counts a request that found dependency unconfigured.
func (m *Manager) RecordMisconfiguration(dependency string) {
	if !m.enabled {
		return
	}
	m.misconfigurations.WithLabelValues(dependency).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func (m *Manager) RecordErrorByType(errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func (m *Manager) RecordErrorLatency(component, errorType string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the heap allocation in bytes.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if !m.enabled {
		return
	}
	m.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemGCPauseTime.Observe(pauseMs)
}

// Handler serves the manager's registry in the Prometheus exposition format.
func (m *Manager) Handler() (http.Handler, error) {
	g, ok := m.registry.(prometheus.Gatherer)
	if !ok {
		return nil, ErrNoGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{}), nil
}

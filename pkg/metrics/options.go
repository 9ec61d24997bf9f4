package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Manager before its collectors are registered.
type Option func(*Manager)

// WithMetricsEnabled turns every Record/Update call into a no-op when false.
func WithMetricsEnabled(enabled bool) Option {
	return func(m *Manager) {
		m.enabled = enabled
	}
}

// WithConstLabel attaches a constant label, such as the deployment
// environment, to every collector. An empty value drops the label.
func WithConstLabel(name, value string) Option {
	return func(m *Manager) {
		if name != "" && value != "" {
			m.constLabels[name] = value
		}
	}
}

// WithPrometheusRegistry registers collectors on r instead of a fresh
// registry. Handler requires r to also be a prometheus.Gatherer.
func WithPrometheusRegistry(r prometheus.Registerer) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

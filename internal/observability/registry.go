package observability

import "time"

// MetricsRegistry provides an interface for recording application metrics
// so components don't reach for the Prometheus globals directly.
type MetricsRegistry interface {
	// HTTP Request metrics
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	// Ad unit metrics
	IncrementUnitsRendered(layout string)
	IncrementUnitsSuppressed(reason string)

	// Catalog metrics
	IncrementCatalogReloads(outcome string)
	SetCatalogSize(n int)
}

// PrometheusRegistry implements MetricsRegistry using the global Prometheus metrics
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

// HTTP Request metrics
func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	RequestCount.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

// Ad unit metrics
func (r *PrometheusRegistry) IncrementUnitsRendered(layout string) {
	UnitsRendered.WithLabelValues(layout).Inc()
}

func (r *PrometheusRegistry) IncrementUnitsSuppressed(reason string) {
	UnitsSuppressed.WithLabelValues(reason).Inc()
}

// Catalog metrics
func (r *PrometheusRegistry) IncrementCatalogReloads(outcome string) {
	CatalogReloads.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRegistry) SetCatalogSize(n int) {
	CatalogSize.Set(float64(n))
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

// HTTP Request metrics
func (r *NoOpRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}

// Ad unit metrics
func (r *NoOpRegistry) IncrementUnitsRendered(layout string)   {}
func (r *NoOpRegistry) IncrementUnitsSuppressed(reason string) {}

// Catalog metrics
func (r *NoOpRegistry) IncrementCatalogReloads(outcome string) {}
func (r *NoOpRegistry) SetCatalogSize(n int)                   {}

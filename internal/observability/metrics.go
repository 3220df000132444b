package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total requests per endpoint, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsense_requests_total",
			Help: "Total API requests received",
		},
		[]string{"endpoint", "method", "status"},
	)

	// request latency in seconds per endpoint/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adsense_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// ad units rendered, labelled by the layout actually used
	UnitsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsense_units_rendered_total",
			Help: "Total ad units rendered",
		},
		[]string{"layout"},
	)

	// ad units that rendered nothing, labelled by reason
	UnitsSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsense_units_suppressed_total",
			Help: "Total ad units suppressed by validation",
		},
		[]string{"reason"},
	)

	// placement catalog reloads labelled by outcome
	CatalogReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsense_catalog_reloads_total",
			Help: "Total placement catalog reloads",
		},
		[]string{"outcome"},
	)

	// number of placements in the active catalog
	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "adsense_catalog_placements",
			Help: "Placements in the active catalog",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		UnitsRendered,
		UnitsSuppressed,
		CatalogReloads,
		CatalogSize,
	)
}

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// RoutingMetricsCollector handles jump path and transit estimate metrics
type RoutingMetricsCollector struct {
	routesTotal     *prometheus.CounterVec
	routeExpansions *prometheus.HistogramVec
	routeJumps      prometheus.Histogram
	transitDays     *prometheus.HistogramVec
}

// NewRoutingMetricsCollector creates a new routing metrics collector
func NewRoutingMetricsCollector() *RoutingMetricsCollector {
	return &RoutingMetricsCollector{
		routesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "routes_total",
				Help:      "Total number of route searches by stop reason",
			},
			[]string{"reason", "reached"},
		),

		routeExpansions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_expansions",
				Help:      "Nodes dequeued per route search",
				Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"reason"},
		),

		routeJumps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_jumps",
				Help:      "Jumps in completed routes",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
			},
		),

		transitDays: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transit_days",
				Help:      "Estimated delivery delay distribution in days",
				Buckets:   []float64{1, 7, 14, 30, 60, 90, 180, 365},
			},
			[]string{"kind"},
		),
	}
}

// Register registers all routing metrics with the Prometheus registry
func (c *RoutingMetricsCollector) Register() error {
	return registerAll(c.routesTotal, c.routeExpansions, c.routeJumps, c.transitDays)
}

// RecordRoute records one route search
func (c *RoutingMetricsCollector) RecordRoute(reason string, reached bool, expansions int, jumps int) {
	c.routesTotal.WithLabelValues(reason, strconv.FormatBool(reached)).Inc()
	c.routeExpansions.WithLabelValues(reason).Observe(float64(expansions))
	if reached {
		c.routeJumps.Observe(float64(jumps))
	}
}

// RecordTransitEstimate records one delivery estimate
func (c *RoutingMetricsCollector) RecordTransitEstimate(kind string, days int) {
	c.transitDays.WithLabelValues(kind).Observe(float64(days))
}

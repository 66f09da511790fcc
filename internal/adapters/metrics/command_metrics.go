package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector tracks mediator requests: how long each handler
// ran, how it ended, and how many are running right now
type CommandMetricsCollector struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
	inFlight prometheus.Gauge
}

// NewCommandMetricsCollector builds the collector; call Register before use
func NewCommandMetricsCollector() *CommandMetricsCollector {
	labels := []string{"command", "status"}
	return &CommandMetricsCollector{
		// procurement cycles over long spans dominate the upper buckets
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "command_duration_seconds",
			Help:      "Mediator request duration by request type and status",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 9),
		}, labels),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commands_total",
			Help:      "Total number of commands executed by type and status",
		}, labels),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commands_in_flight",
			Help:      "Mediator requests currently being handled",
		}),
	}
}

// Register adds the collector's metrics to Registry
func (c *CommandMetricsCollector) Register() error {
	return registerAll(c.duration, c.total, c.inFlight)
}

func (c *CommandMetricsCollector) begin() { c.inFlight.Inc() }

// RecordCommandExecution closes out one request started with begin
func (c *CommandMetricsCollector) RecordCommandExecution(name string, seconds float64, success bool) {
	c.inFlight.Dec()
	status := "success"
	if !success {
		status = "error"
	}
	c.duration.WithLabelValues(name, status).Observe(seconds)
	c.total.WithLabelValues(name, status).Inc()
}

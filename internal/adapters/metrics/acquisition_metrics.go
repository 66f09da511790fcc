package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// AcquisitionMetricsCollector handles procurement metrics
type AcquisitionMetricsCollector struct {
	attemptsTotal   *prometheus.CounterVec
	deliveriesTotal *prometheus.CounterVec
	spendTotal      prometheus.Counter
	deliveryDays    prometheus.Histogram
	cycleItems      *prometheus.GaugeVec
}

// NewAcquisitionMetricsCollector creates a new acquisition metrics collector
func NewAcquisitionMetricsCollector() *AcquisitionMetricsCollector {
	return &AcquisitionMetricsCollector{
		attemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "acquisition_attempts_total",
				Help:      "Acquisition attempts by scheduler mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		deliveriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "acquisition_deliveries_total",
				Help:      "Items acquired and shipped, by item name",
			},
			[]string{"item"},
		),

		spendTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "acquisition_spend_total",
				Help:      "Total funds debited for acquisitions",
			},
		),

		deliveryDays: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "acquisition_delivery_days",
				Help:      "Transit time of acquired items",
				Buckets:   []float64{1, 7, 14, 30, 60, 90, 180},
			},
		),

		cycleItems: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "procurement_cycle_items",
				Help:      "Shopping list items after the last cycle by state",
			},
			[]string{"mode", "state"},
		),
	}
}

// Register registers all acquisition metrics with the Prometheus registry
func (c *AcquisitionMetricsCollector) Register() error {
	return registerAll(c.attemptsTotal, c.deliveriesTotal, c.spendTotal, c.deliveryDays, c.cycleItems)
}

// RecordAttempt records an acquisition attempt
func (c *AcquisitionMetricsCollector) RecordAttempt(mode string, outcome string) {
	c.attemptsTotal.WithLabelValues(mode, outcome).Inc()
}

// RecordDelivery records a successful acquisition
func (c *AcquisitionMetricsCollector) RecordDelivery(item string, cost int64, transitDays int) {
	c.deliveriesTotal.WithLabelValues(item).Inc()
	if cost > 0 {
		c.spendTotal.Add(float64(cost))
	}
	c.deliveryDays.Observe(float64(transitDays))
}

// RecordCycle records the shape of the shopping list after a cycle
func (c *AcquisitionMetricsCollector) RecordCycle(mode string, resolved int, carried int, shelved int) {
	c.cycleItems.WithLabelValues(mode, "resolved").Set(float64(resolved))
	c.cycleItems.WithLabelValues(mode, "carried").Set(float64(carried))
	c.cycleItems.WithLabelValues(mode, "shelved").Set(float64(shelved))
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StockMetricsCollector handles quartermaster and balance metrics
type StockMetricsCollector struct {
	ammoShotsTotal *prometheus.CounterVec
	ammoLossTotal  *prometheus.CounterVec
	arrivalsTotal  prometheus.Counter
	accountBalance prometheus.Gauge
}

// NewStockMetricsCollector creates a new stock metrics collector
func NewStockMetricsCollector() *StockMetricsCollector {
	return &StockMetricsCollector{
		ammoShotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ammo_shots_total",
				Help:      "Ammunition shots by type and disposition (requested, delivered, surplus)",
			},
			[]string{"ammo_type", "disposition"},
		),

		ammoLossTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ammo_conversion_loss_rounds_total",
				Help:      "Rounds lost to rounding when converting between rack sizes",
			},
			[]string{"ammo_type"},
		),

		arrivalsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "shipments_arrived_total",
				Help:      "Shipments that reached the warehouse",
			},
		),

		accountBalance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "account_balance",
				Help:      "Current campaign balance",
			},
		),
	}
}

// Register registers all stock metrics with the Prometheus registry
func (c *StockMetricsCollector) Register() error {
	return registerAll(c.ammoShotsTotal, c.ammoLossTotal, c.arrivalsTotal, c.accountBalance)
}

// RecordAmmoWithdrawal records one ammunition withdrawal
func (c *StockMetricsCollector) RecordAmmoWithdrawal(ammoType string, requested, delivered, surplus, loss int) {
	c.ammoShotsTotal.WithLabelValues(ammoType, "requested").Add(float64(requested))
	c.ammoShotsTotal.WithLabelValues(ammoType, "delivered").Add(float64(delivered))
	if surplus > 0 {
		c.ammoShotsTotal.WithLabelValues(ammoType, "surplus").Add(float64(surplus))
	}
	if loss > 0 {
		c.ammoLossTotal.WithLabelValues(ammoType).Add(float64(loss))
	}
}

// RecordArrivals records shipments entering stock
func (c *StockMetricsCollector) RecordArrivals(count int) {
	c.arrivalsTotal.Add(float64(count))
}

// RecordBalance records the campaign balance
func (c *StockMetricsCollector) RecordBalance(balance int64) {
	c.accountBalance.Set(float64(balance))
}

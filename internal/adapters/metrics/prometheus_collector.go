package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "starlane"
	// Subsystem for logistics engine metrics
	subsystem = "logistics"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	globalRoutingCollector     RoutingMetricsRecorder
	globalAcquisitionCollector AcquisitionMetricsRecorder
	globalStockCollector       StockMetricsRecorder
)

// RoutingMetricsRecorder records router outcomes
type RoutingMetricsRecorder interface {
	RecordRoute(reason string, reached bool, expansions int, jumps int)
	RecordTransitEstimate(kind string, days int)
}

// AcquisitionMetricsRecorder records procurement activity
type AcquisitionMetricsRecorder interface {
	RecordAttempt(mode string, outcome string)
	RecordDelivery(item string, cost int64, transitDays int)
	RecordCycle(mode string, resolved int, carried int, shelved int)
}

// StockMetricsRecorder records quartermaster activity
type StockMetricsRecorder interface {
	RecordAmmoWithdrawal(ammoType string, requested, delivered, surplus, loss int)
	RecordArrivals(count int)
	RecordBalance(balance int64)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset clears the registry and every global collector
func Reset() {
	Registry = nil
	globalRoutingCollector = nil
	globalAcquisitionCollector = nil
	globalStockCollector = nil
}

// Enable initializes the registry and registers every logistics collector globally
func Enable() error {
	InitRegistry()

	routing := NewRoutingMetricsCollector()
	if err := routing.Register(); err != nil {
		return err
	}
	acquisition := NewAcquisitionMetricsCollector()
	if err := acquisition.Register(); err != nil {
		return err
	}
	stock := NewStockMetricsCollector()
	if err := stock.Register(); err != nil {
		return err
	}

	SetGlobalRoutingCollector(routing)
	SetGlobalAcquisitionCollector(acquisition)
	SetGlobalStockCollector(stock)
	return nil
}

func SetGlobalRoutingCollector(collector RoutingMetricsRecorder) {
	globalRoutingCollector = collector
}

func SetGlobalAcquisitionCollector(collector AcquisitionMetricsRecorder) {
	globalAcquisitionCollector = collector
}

func SetGlobalStockCollector(collector StockMetricsRecorder) {
	globalStockCollector = collector
}

// RecordRoute records a route search globally
func RecordRoute(reason string, reached bool, expansions int, jumps int) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordRoute(reason, reached, expansions, jumps)
	}
}

// RecordTransitEstimate records an estimated delivery delay globally
func RecordTransitEstimate(kind string, days int) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordTransitEstimate(kind, days)
	}
}

// RecordAttempt records an acquisition attempt globally
func RecordAttempt(mode string, outcome string) {
	if globalAcquisitionCollector != nil {
		globalAcquisitionCollector.RecordAttempt(mode, outcome)
	}
}

// RecordDelivery records a successful acquisition globally
func RecordDelivery(item string, cost int64, transitDays int) {
	if globalAcquisitionCollector != nil {
		globalAcquisitionCollector.RecordDelivery(item, cost, transitDays)
	}
}

// RecordCycle records the outcome of a procurement cycle globally
func RecordCycle(mode string, resolved int, carried int, shelved int) {
	if globalAcquisitionCollector != nil {
		globalAcquisitionCollector.RecordCycle(mode, resolved, carried, shelved)
	}
}

// RecordAmmoWithdrawal records an ammunition withdrawal globally
func RecordAmmoWithdrawal(ammoType string, requested, delivered, surplus, loss int) {
	if globalStockCollector != nil {
		globalStockCollector.RecordAmmoWithdrawal(ammoType, requested, delivered, surplus, loss)
	}
}

// RecordArrivals records shipments entering the warehouse globally
func RecordArrivals(count int) {
	if globalStockCollector != nil {
		globalStockCollector.RecordArrivals(count)
	}
}

// RecordBalance records the campaign balance globally
func RecordBalance(balance int64) {
	if globalStockCollector != nil {
		globalStockCollector.RecordBalance(balance)
	}
}

func registerAll(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}
	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

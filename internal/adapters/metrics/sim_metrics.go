// Package metrics exposes Prometheus instrumentation for the simulation.
// Collection is optional: when the registry is never initialized every
// recording call is a no-op.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

const (
	namespace = "homestead"
	subsystem = "sim"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalCollector is the singleton sim metrics collector, set by
	// SetGlobalCollector when metrics are enabled
	globalCollector CycleRecorder
)

// CycleRecorder records the outcome of one simulation cycle
type CycleRecorder interface {
	RecordCycle(report *sim.CycleReport, snapshot sim.Snapshot)
}

// InitRegistry initializes the Prometheus registry.
// Should be called once at application startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCollector sets the global cycle recorder
func SetGlobalCollector(collector CycleRecorder) {
	globalCollector = collector
}

// RecordCycle records a cycle globally; safe to call when metrics are off
func RecordCycle(report *sim.CycleReport, snapshot sim.Snapshot) {
	if globalCollector != nil {
		globalCollector.RecordCycle(report, snapshot)
	}
}

// SimMetricsCollector tracks cycle counts, fired events, warnings and the
// colony's current stocks
type SimMetricsCollector struct {
	cyclesTotal      prometheus.Counter
	eventsTotal      *prometheus.CounterVec
	warningsTotal    prometheus.Counter
	resourceQuantity *prometheus.GaugeVec
	colonistCount    prometheus.Gauge
	buildingCount    prometheus.Gauge
	turnNumber       prometheus.Gauge
}

// NewSimMetricsCollector creates a collector and registers its metrics with
// the global registry
func NewSimMetricsCollector() *SimMetricsCollector {
	c := &SimMetricsCollector{
		cyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cycles_total",
			Help:      "Total number of simulation cycles run",
		}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "events_total",
			Help:      "Total number of random events fired by kind",
		}, []string{"event"}),
		warningsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "warnings_total",
			Help:      "Total number of non-fatal warnings reported by cycles",
		}),
		resourceQuantity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resource_quantity",
			Help:      "Current ledger quantity per resource kind",
		}, []string{"kind"}),
		colonistCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "colonist_count",
			Help:      "Current roster size",
		}),
		buildingCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "building_count",
			Help:      "Current number of buildings",
		}),
		turnNumber: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "turn_number",
			Help:      "Current turn counter",
		}),
	}

	if IsEnabled() {
		Registry.MustRegister(
			c.cyclesTotal,
			c.eventsTotal,
			c.warningsTotal,
			c.resourceQuantity,
			c.colonistCount,
			c.buildingCount,
			c.turnNumber,
		)
	}

	return c
}

// RecordCycle updates all metrics from one cycle report and snapshot
func (c *SimMetricsCollector) RecordCycle(report *sim.CycleReport, snapshot sim.Snapshot) {
	c.cyclesTotal.Inc()
	if report.Event != nil {
		c.eventsTotal.WithLabelValues(string(report.Event.Kind)).Inc()
	}
	c.warningsTotal.Add(float64(len(report.Warnings)))

	for kind, quantity := range snapshot.Resources {
		c.resourceQuantity.WithLabelValues(string(kind)).Set(float64(quantity))
	}
	c.colonistCount.Set(float64(len(snapshot.Colonists)))
	c.buildingCount.Set(float64(len(snapshot.Buildings)))
	c.turnNumber.Set(float64(snapshot.Turn))
}

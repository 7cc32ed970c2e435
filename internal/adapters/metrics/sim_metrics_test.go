package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/metrics"
	"github.com/andrescamacho/stellar-homestead/internal/domain/event"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// One function so the global registry lifecycle runs in a fixed order.
func TestMetricsLifecycle(t *testing.T) {
	// Before the registry exists every recording call is a no-op
	assert.False(t, metrics.IsEnabled())
	metrics.RecordCycle(&sim.CycleReport{}, sim.Snapshot{})

	metrics.InitRegistry()
	assert.True(t, metrics.IsEnabled())

	metrics.SetGlobalCollector(metrics.NewSimMetricsCollector())

	report := &sim.CycleReport{
		Turn:     1,
		Event:    &sim.FiredEvent{Kind: event.SolarStorm, Name: "Solar Storm"},
		Warnings: []string{"upkeep not met"},
	}
	snapshot := sim.Snapshot{
		Turn:      2,
		Resources: map[resource.Kind]int{resource.Food: 119},
	}
	metrics.RecordCycle(report, snapshot)

	families, err := metrics.Registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, family := range families {
		if len(family.GetMetric()) > 0 {
			values[family.GetName()] = family.GetMetric()[0].GetCounter().GetValue() +
				family.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, 1.0, values["homestead_sim_cycles_total"])
	assert.Equal(t, 1.0, values["homestead_sim_events_total"])
	assert.Equal(t, 1.0, values["homestead_sim_warnings_total"])
	assert.Equal(t, 119.0, values["homestead_sim_resource_quantity"])
	assert.Equal(t, 2.0, values["homestead_sim_turn_number"])
}

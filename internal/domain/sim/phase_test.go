package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

func TestState_CycleTransitions(t *testing.T) {
	s := sim.NewState()

	assert.Equal(t, sim.PhaseSetup, s.Phase())
	assert.Equal(t, 1, s.Turn())
	assert.True(t, s.Running())

	s.Next()
	assert.Equal(t, sim.PhaseProduction, s.Phase())
	s.Next()
	assert.Equal(t, sim.PhaseEvent, s.Phase())
	s.Next()
	assert.Equal(t, sim.PhaseManagement, s.Phase())

	// The turn counter only moves on the Management -> Production edge
	assert.Equal(t, 1, s.Turn())
	s.Next()
	assert.Equal(t, sim.PhaseProduction, s.Phase())
	assert.Equal(t, 2, s.Turn())
}

func TestState_End(t *testing.T) {
	s := sim.NewState()
	s.Next()

	s.End()

	assert.Equal(t, sim.PhaseEnd, s.Phase())
	assert.False(t, s.Running())
}

func TestReconstructState(t *testing.T) {
	s := sim.ReconstructState(sim.PhaseManagement, 7, true)

	assert.Equal(t, sim.PhaseManagement, s.Phase())
	assert.Equal(t, 7, s.Turn())
	assert.True(t, s.Running())

	s.Next()
	assert.Equal(t, 8, s.Turn())
}

package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

func TestNewLedger_StartingQuantities(t *testing.T) {
	ledger := resource.NewLedger()

	snapshot := ledger.Snapshot()
	assert.Equal(t, 100, snapshot[resource.Food])
	assert.Equal(t, 100, snapshot[resource.Energy])
	assert.Equal(t, 50, snapshot[resource.Materials])
	assert.Equal(t, 100, snapshot[resource.Oxygen])
}

func TestLedger_SubtractAllOrNothing(t *testing.T) {
	// Arrange
	ledger := resource.NewLedger()
	before := ledger.Snapshot()

	// Act - food is affordable, materials is not
	err := ledger.Subtract(resource.Delta{
		resource.Food:      50,
		resource.Materials: 60,
	})

	// Assert - nothing changed, including the affordable key
	require.Error(t, err)
	var insufficient *resource.InsufficientResourceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, resource.Materials, insufficient.Kind)
	assert.Equal(t, 60, insufficient.Required)
	assert.Equal(t, 50, insufficient.Available)
	assert.Equal(t, before, ledger.Snapshot())
}

func TestLedger_SubtractToExactlyZero(t *testing.T) {
	ledger := resource.NewLedger()

	err := ledger.Subtract(resource.Delta{resource.Materials: 50})

	require.NoError(t, err)
	quantity, err := ledger.Quantity(resource.Materials)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)
}

func TestLedger_CanAffordMatchesSubtract(t *testing.T) {
	ledger := resource.NewLedger()

	affordable := resource.Delta{resource.Food: 100, resource.Energy: 1}
	unaffordable := resource.Delta{resource.Materials: 51}

	assert.True(t, ledger.CanAfford(affordable))
	assert.NoError(t, ledger.Subtract(affordable))

	assert.False(t, ledger.CanAfford(unaffordable))
	assert.Error(t, ledger.Subtract(unaffordable))
}

func TestLedger_CanAffordUnknownKind(t *testing.T) {
	ledger := resource.NewLedger()

	// A kind the ledger does not track counts as zero: a positive cost is
	// unaffordable, a non-positive one succeeds exactly as Subtract does
	water := resource.Kind("water")
	assert.False(t, ledger.CanAfford(resource.Delta{water: 1}))
	assert.Error(t, ledger.Subtract(resource.Delta{water: 1}))

	assert.True(t, ledger.CanAfford(resource.Delta{water: 0}))
	assert.NoError(t, ledger.Subtract(resource.Delta{water: 0}))

	assert.True(t, ledger.CanAfford(resource.Delta{water: -5}))
	assert.NoError(t, ledger.Subtract(resource.Delta{water: -5}))
	quantity, err := ledger.Quantity(water)
	require.NoError(t, err)
	assert.Equal(t, 5, quantity)
}

func TestLedger_AddAllowsNegativeQuantities(t *testing.T) {
	ledger := resource.NewLedger()

	// Event effects are additive; a large negative component may push the
	// quantity below zero
	ledger.Add(resource.Delta{resource.Energy: -130})

	quantity, err := ledger.Quantity(resource.Energy)
	require.NoError(t, err)
	assert.Equal(t, -30, quantity)
}

func TestLedger_AddUnionMergesUnknownKinds(t *testing.T) {
	ledger := resource.NewLedger()

	ledger.Add(resource.Delta{resource.Kind("water"): 5})

	quantity, err := ledger.Quantity(resource.Kind("water"))
	require.NoError(t, err)
	assert.Equal(t, 5, quantity)
}

func TestLedger_QuantityUnknownKind(t *testing.T) {
	ledger := resource.NewLedger()

	_, err := ledger.Quantity(resource.Kind("plutonium"))

	var unknown *resource.UnknownResourceKindError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, resource.Kind("plutonium"), unknown.Kind)
}

func TestReconstructLedger_CopiesInput(t *testing.T) {
	quantities := map[resource.Kind]int{resource.Food: 7}
	ledger := resource.ReconstructLedger(quantities)

	quantities[resource.Food] = 99

	got, err := ledger.Quantity(resource.Food)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestDelta_Accumulate(t *testing.T) {
	total := resource.Delta{resource.Food: 10}

	total.Accumulate(resource.Delta{resource.Food: 5, resource.Energy: -3})

	assert.Equal(t, resource.Delta{resource.Food: 15, resource.Energy: -3}, total)
}

func TestParseKind(t *testing.T) {
	kind, err := resource.ParseKind("oxygen")
	require.NoError(t, err)
	assert.Equal(t, resource.Oxygen, kind)

	_, err = resource.ParseKind("dilithium")
	assert.Error(t, err)
}

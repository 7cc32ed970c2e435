package colony_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

func TestNewBuilding_CatalogData(t *testing.T) {
	tests := []struct {
		kind   colony.BuildingKind
		cost   resource.Delta
		output resource.Kind
		rate   int
	}{
		{colony.SolarPanel, resource.Delta{resource.Materials: 20}, resource.Energy, 15},
		{colony.Greenhouse, resource.Delta{resource.Materials: 30, resource.Energy: 10}, resource.Food, 20},
		{colony.OxygenGenerator, resource.Delta{resource.Materials: 25, resource.Energy: 15}, resource.Oxygen, 10},
		{colony.MaterialFactory, resource.Delta{resource.Materials: 40, resource.Energy: 20}, resource.Materials, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			b, err := colony.NewBuilding(tt.kind)

			require.NoError(t, err)
			assert.Equal(t, tt.cost, b.Cost())
			assert.Equal(t, tt.output, b.OutputKind())
			assert.Equal(t, 1, b.Level())
			assert.True(t, b.Operational())
			assert.Equal(t, resource.Delta{tt.output: tt.rate}, b.Produce())
		})
	}
}

func TestNewBuilding_UnknownKind(t *testing.T) {
	_, err := colony.NewBuilding(colony.BuildingKind("casino"))

	var invalid *colony.InvalidBuildingKindError
	require.ErrorAs(t, err, &invalid)
}

func TestBuilding_ProduceScalesWithLevel(t *testing.T) {
	b, err := colony.NewBuilding(colony.SolarPanel)
	require.NoError(t, err)

	b.Upgrade()

	assert.Equal(t, 2, b.Level())
	assert.Equal(t, resource.Delta{resource.Energy: 30}, b.Produce())
}

func TestBuilding_NonOperationalProducesNothing(t *testing.T) {
	b, err := colony.NewBuilding(colony.Greenhouse)
	require.NoError(t, err)

	b.SetOperational(false)

	assert.Empty(t, b.Produce())
}

func TestBuilding_UpgradeBumpsOnlyMaterialsRate(t *testing.T) {
	// The upgrade rate bonus lands on the materials entry regardless of what
	// the building produces, so only material factories see it in output
	solar, err := colony.NewBuilding(colony.SolarPanel)
	require.NoError(t, err)
	factory, err := colony.NewBuilding(colony.MaterialFactory)
	require.NoError(t, err)

	solar.Upgrade()
	factory.Upgrade()

	// Solar output doubles with level but its per-level rate is untouched
	assert.Equal(t, resource.Delta{resource.Energy: 30}, solar.Produce())
	// Factory rate went 8 -> 13, times level 2
	assert.Equal(t, resource.Delta{resource.Materials: 26}, factory.Produce())
}

func TestReconstructBuilding_MatchesUpgradePath(t *testing.T) {
	upgraded, err := colony.NewBuilding(colony.MaterialFactory)
	require.NoError(t, err)
	upgraded.Upgrade()
	upgraded.Upgrade()

	restored, err := colony.ReconstructBuilding(colony.MaterialFactory, 3, true)
	require.NoError(t, err)

	assert.Equal(t, upgraded.Level(), restored.Level())
	assert.Equal(t, upgraded.Produce(), restored.Produce())
}

func TestReconstructBuilding_PreservesOperationalFlag(t *testing.T) {
	b, err := colony.ReconstructBuilding(colony.SolarPanel, 2, false)

	require.NoError(t, err)
	assert.False(t, b.Operational())
	assert.Empty(t, b.Produce())
}

func TestParseBuildingKind(t *testing.T) {
	kind, err := colony.ParseBuildingKind("oxygen_generator")
	require.NoError(t, err)
	assert.Equal(t, colony.OxygenGenerator, kind)

	_, err = colony.ParseBuildingKind("arcade")
	assert.Error(t, err)
}

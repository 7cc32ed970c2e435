package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/persistence"
	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
	"github.com/andrescamacho/stellar-homestead/test/helpers"
)

type fixedRoller struct {
	roll int
}

func (r fixedRoller) Roll() int { return r.roll }

func TestRunRepository_SaveAndLoad(t *testing.T) {
	// Arrange - a run with some history: an upgrade, an assignment and a
	// couple of completed cycles
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	engine := sim.NewEngine(fixedRoller{roll: 100})
	_, err := engine.AdvanceCycle(nil)
	require.NoError(t, err)
	require.NoError(t, engine.Apply(sim.UpgradeBuilding{Index: 0}))
	require.NoError(t, engine.Apply(sim.AssignColonist{Index: 2}))

	// Act
	err = repo.Save(context.Background(), engine)
	require.NoError(t, err)

	loaded, err := repo.Load(context.Background(), engine.RunID(), fixedRoller{roll: 100})
	require.NoError(t, err)

	// Assert - the loaded run is indistinguishable from the original
	assert.Equal(t, engine.Snapshot(), loaded.Snapshot())
}

func TestRunRepository_LoadedRunKeepsPlaying(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	original := sim.NewEngine(fixedRoller{roll: 100})
	_, err := original.AdvanceCycle(nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), original))

	loaded, err := repo.Load(context.Background(), original.RunID(), fixedRoller{roll: 100})
	require.NoError(t, err)

	// The same roll sequence produces the same next cycle on both runs
	originalReport, err := original.AdvanceCycle(nil)
	require.NoError(t, err)
	loadedReport, err := loaded.AdvanceCycle(nil)
	require.NoError(t, err)

	assert.Equal(t, originalReport, loadedReport)
	assert.Equal(t, original.Snapshot(), loaded.Snapshot())
}

func TestRunRepository_SaveReplacesSnapshot(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	engine := sim.NewEngine(fixedRoller{roll: 100})
	require.NoError(t, repo.Save(context.Background(), engine))

	// Grow the roster between saves; the old rows must not linger
	require.NoError(t, engine.Apply(sim.Build{Kind: colony.SolarPanel}))
	_, err := engine.AdvanceCycle(nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), engine))

	loaded, err := repo.Load(context.Background(), engine.RunID(), fixedRoller{roll: 100})
	require.NoError(t, err)

	snapshot := loaded.Snapshot()
	assert.Len(t, snapshot.Buildings, 3)
	assert.Equal(t, engine.Snapshot().Resources, snapshot.Resources)
}

func TestRunRepository_LoadNotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	_, err := repo.Load(context.Background(), "no-such-run", fixedRoller{roll: 100})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
}

func TestRunRepository_List(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	first := sim.NewEngine(fixedRoller{roll: 100})
	second := sim.NewEngine(fixedRoller{roll: 100})
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	summaries, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	ids := []string{summaries[0].RunID, summaries[1].RunID}
	assert.Contains(t, ids, first.RunID())
	assert.Contains(t, ids, second.RunID())
	for _, summary := range summaries {
		assert.Equal(t, 1, summary.Turn)
		assert.True(t, summary.Running)
		assert.False(t, summary.SavedAt.IsZero())
	}
}

func TestRunRepository_PreservesRosterOrder(t *testing.T) {
	// The solar storm responder scan depends on roster order surviving a
	// round trip
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	engine := sim.ReconstructEngine(
		"ordered-run",
		sim.NewState(),
		resource.NewLedger(),
		nil,
		[]*colony.Colonist{
			colony.NewColonist("Maria Santos", colony.Scientist),
			colony.NewColonist("Alex Chen", colony.Engineer),
			colony.NewColonist("Dana Park", colony.Engineer),
		},
		fixedRoller{roll: 100},
	)
	require.NoError(t, repo.Save(context.Background(), engine))

	loaded, err := repo.Load(context.Background(), "ordered-run", fixedRoller{roll: 100})
	require.NoError(t, err)

	snapshot := loaded.Snapshot()
	require.Len(t, snapshot.Colonists, 3)
	assert.Equal(t, "Maria Santos", snapshot.Colonists[0].Name)
	assert.Equal(t, "Alex Chen", snapshot.Colonists[1].Name)
	assert.Equal(t, "Dana Park", snapshot.Colonists[2].Name)
}

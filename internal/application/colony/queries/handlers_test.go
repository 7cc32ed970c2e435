package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/persistence"
	"github.com/andrescamacho/stellar-homestead/internal/application/colony/queries"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
	"github.com/andrescamacho/stellar-homestead/test/helpers"
)

type fixedRoller struct {
	roll int
}

func (r fixedRoller) Roll() int { return r.roll }

func TestGetColonyStatusHandler(t *testing.T) {
	engine := sim.NewEngine(fixedRoller{roll: 100})
	handler := queries.NewGetColonyStatusHandler(engine)

	result, err := handler.Handle(context.Background(), &queries.GetColonyStatusQuery{})

	require.NoError(t, err)
	response := result.(*queries.GetColonyStatusResponse)
	assert.Equal(t, engine.Snapshot(), response.Snapshot)
}

func TestListRunsHandler(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	engine := sim.NewEngine(fixedRoller{roll: 100})
	require.NoError(t, repo.Save(context.Background(), engine))

	handler := queries.NewListRunsHandler(repo)
	result, err := handler.Handle(context.Background(), &queries.ListRunsQuery{})

	require.NoError(t, err)
	response := result.(*queries.ListRunsResponse)
	require.Len(t, response.Runs, 1)
	assert.Equal(t, engine.RunID(), response.Runs[0].RunID)
}

func TestListRunsHandler_RejectsWrongRequestType(t *testing.T) {
	handler := queries.NewListRunsHandler(nil)

	_, err := handler.Handle(context.Background(), &queries.GetColonyStatusQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request type")
}

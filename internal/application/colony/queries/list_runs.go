package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// ListRunsQuery requests summaries of all persisted runs
type ListRunsQuery struct{}

// ListRunsResponse carries the summaries, newest first
type ListRunsResponse struct {
	Runs []sim.RunSummary
}

// ListRunsHandler handles the ListRuns query
type ListRunsHandler struct {
	runs sim.RunRepository
}

// NewListRunsHandler creates a new ListRunsHandler
func NewListRunsHandler(runs sim.RunRepository) *ListRunsHandler {
	return &ListRunsHandler{runs: runs}
}

// Handle executes the ListRuns query
func (h *ListRunsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListRunsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListRunsQuery")
	}

	runs, err := h.runs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &ListRunsResponse{Runs: runs}, nil
}

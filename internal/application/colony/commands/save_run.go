package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// SaveRunCommand persists the complete run snapshot
type SaveRunCommand struct{}

// SaveRunResponse reports where the run was stored
type SaveRunResponse struct {
	RunID string
}

// SaveRunHandler handles the SaveRun command
type SaveRunHandler struct {
	engine *sim.Engine
	runs   sim.RunRepository
}

// NewSaveRunHandler creates a new SaveRunHandler
func NewSaveRunHandler(engine *sim.Engine, runs sim.RunRepository) *SaveRunHandler {
	return &SaveRunHandler{engine: engine, runs: runs}
}

// Handle executes the SaveRun command
func (h *SaveRunHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*SaveRunCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveRunCommand")
	}

	if h.runs == nil {
		return nil, fmt.Errorf("no run repository configured")
	}

	if err := h.runs.Save(ctx, h.engine); err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}

	return &SaveRunResponse{RunID: h.engine.RunID()}, nil
}

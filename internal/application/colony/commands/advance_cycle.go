package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/metrics"
	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// AdvanceCycleCommand runs one full Production -> Event -> Management cycle,
// pulling management decisions from Driver (nil means no decisions).
type AdvanceCycleCommand struct {
	Driver sim.Driver
}

// AdvanceCycleResponse carries the cycle report and the post-cycle view
type AdvanceCycleResponse struct {
	Report   *sim.CycleReport
	Snapshot sim.Snapshot
}

// AdvanceCycleHandler handles the AdvanceCycle command
type AdvanceCycleHandler struct {
	engine   *sim.Engine
	runs     sim.RunRepository
	autoSave bool
}

// NewAdvanceCycleHandler creates a new AdvanceCycleHandler. runs may be nil
// when persistence is not configured; autoSave persists the run after every
// cycle.
func NewAdvanceCycleHandler(engine *sim.Engine, runs sim.RunRepository, autoSave bool) *AdvanceCycleHandler {
	return &AdvanceCycleHandler{engine: engine, runs: runs, autoSave: autoSave}
}

// Handle executes the AdvanceCycle command
func (h *AdvanceCycleHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*AdvanceCycleCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AdvanceCycleCommand")
	}

	report, err := h.engine.AdvanceCycle(cmd.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to advance cycle: %w", err)
	}

	snapshot := h.engine.Snapshot()
	metrics.RecordCycle(report, snapshot)

	if h.runs != nil && h.autoSave {
		if err := h.runs.Save(ctx, h.engine); err != nil {
			return nil, fmt.Errorf("failed to auto-save run: %w", err)
		}
	}

	return &AdvanceCycleResponse{Report: report, Snapshot: snapshot}, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// UpgradeBuildingCommand raises the level of the building at Index
type UpgradeBuildingCommand struct {
	Index int
}

// UpgradeBuildingResponse carries the post-command view
type UpgradeBuildingResponse struct {
	Snapshot sim.Snapshot
}

// UpgradeBuildingHandler handles the UpgradeBuilding command
type UpgradeBuildingHandler struct {
	engine *sim.Engine
}

// NewUpgradeBuildingHandler creates a new UpgradeBuildingHandler
func NewUpgradeBuildingHandler(engine *sim.Engine) *UpgradeBuildingHandler {
	return &UpgradeBuildingHandler{engine: engine}
}

// Handle executes the UpgradeBuilding command
func (h *UpgradeBuildingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*UpgradeBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpgradeBuildingCommand")
	}

	if err := h.engine.Apply(sim.UpgradeBuilding{Index: cmd.Index}); err != nil {
		return nil, fmt.Errorf("upgrade rejected: %w", err)
	}

	return &UpgradeBuildingResponse{Snapshot: h.engine.Snapshot()}, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// BuildStructureCommand constructs a new building, debiting its cost
type BuildStructureCommand struct {
	Kind string
}

// BuildStructureResponse carries the post-command view
type BuildStructureResponse struct {
	Snapshot sim.Snapshot
}

// BuildStructureHandler handles the BuildStructure command
type BuildStructureHandler struct {
	engine *sim.Engine
}

// NewBuildStructureHandler creates a new BuildStructureHandler
func NewBuildStructureHandler(engine *sim.Engine) *BuildStructureHandler {
	return &BuildStructureHandler{engine: engine}
}

// Handle executes the BuildStructure command
func (h *BuildStructureHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*BuildStructureCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuildStructureCommand")
	}

	kind, err := colony.ParseBuildingKind(cmd.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid building kind: %w", err)
	}

	if err := h.engine.Apply(sim.Build{Kind: kind}); err != nil {
		return nil, fmt.Errorf("build rejected: %w", err)
	}

	return &BuildStructureResponse{Snapshot: h.engine.Snapshot()}, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// AssignColonistCommand marks the colonist at Index as assigned
type AssignColonistCommand struct {
	Index int
}

// AssignColonistResponse carries the post-command view
type AssignColonistResponse struct {
	Snapshot sim.Snapshot
}

// AssignColonistHandler handles the AssignColonist command
type AssignColonistHandler struct {
	engine *sim.Engine
}

// NewAssignColonistHandler creates a new AssignColonistHandler
func NewAssignColonistHandler(engine *sim.Engine) *AssignColonistHandler {
	return &AssignColonistHandler{engine: engine}
}

// Handle executes the AssignColonist command
func (h *AssignColonistHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*AssignColonistCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AssignColonistCommand")
	}

	if err := h.engine.Apply(sim.AssignColonist{Index: cmd.Index}); err != nil {
		return nil, fmt.Errorf("assignment rejected: %w", err)
	}

	return &AssignColonistResponse{Snapshot: h.engine.Snapshot()}, nil
}

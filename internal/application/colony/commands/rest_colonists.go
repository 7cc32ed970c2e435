package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// RestColonistsCommand rests every colonist on the roster
type RestColonistsCommand struct{}

// RestColonistsResponse carries the post-command view
type RestColonistsResponse struct {
	Snapshot sim.Snapshot
}

// RestColonistsHandler handles the RestColonists command
type RestColonistsHandler struct {
	engine *sim.Engine
}

// NewRestColonistsHandler creates a new RestColonistsHandler
func NewRestColonistsHandler(engine *sim.Engine) *RestColonistsHandler {
	return &RestColonistsHandler{engine: engine}
}

// Handle executes the RestColonists command
func (h *RestColonistsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*RestColonistsCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *RestColonistsCommand")
	}

	if err := h.engine.Apply(sim.RestAll{}); err != nil {
		return nil, fmt.Errorf("rest rejected: %w", err)
	}

	return &RestColonistsResponse{Snapshot: h.engine.Snapshot()}, nil
}

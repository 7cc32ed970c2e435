package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// GetColonyStatusQuery requests a read-only view of the run
type GetColonyStatusQuery struct{}

// GetColonyStatusResponse carries the view
type GetColonyStatusResponse struct {
	Snapshot sim.Snapshot
}

// GetColonyStatusHandler handles the GetColonyStatus query
type GetColonyStatusHandler struct {
	engine *sim.Engine
}

// NewGetColonyStatusHandler creates a new GetColonyStatusHandler
func NewGetColonyStatusHandler(engine *sim.Engine) *GetColonyStatusHandler {
	return &GetColonyStatusHandler{engine: engine}
}

// Handle executes the GetColonyStatus query
func (h *GetColonyStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetColonyStatusQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetColonyStatusQuery")
	}

	return &GetColonyStatusResponse{Snapshot: h.engine.Snapshot()}, nil
}

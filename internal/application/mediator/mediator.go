// Package mediator routes colony commands and queries to the handler
// registered for their concrete type, so the CLI never holds handler
// references directly.
package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Mediator routes requests by concrete type.
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	RegisterMiddleware(middleware Middleware)
}

type mediator struct {
	byType map[reflect.Type]RequestHandler
	chain  []Middleware
}

// NewMediator creates an empty mediator.
func NewMediator() Mediator {
	return &mediator{byType: make(map[reflect.Type]RequestHandler)}
}

// Register binds a request type to its handler. Each type gets exactly one
// handler; a second registration is refused.
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("mediator: nil request type")
	}
	if handler == nil {
		return fmt.Errorf("mediator: nil handler for %s", requestType)
	}
	if _, taken := m.byType[requestType]; taken {
		return fmt.Errorf("mediator: %s already has a handler", requestType)
	}

	m.byType[requestType] = handler
	return nil
}

// RegisterMiddleware appends a middleware to the dispatch chain. The chain
// runs in registration order, first registered outermost.
func (m *mediator) RegisterMiddleware(middleware Middleware) {
	m.chain = append(m.chain, middleware)
}

// Send routes the request through the middleware chain to its handler.
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("mediator: nil request")
	}

	requestType := reflect.TypeOf(request)
	handler, found := m.byType[requestType]
	if !found {
		return nil, fmt.Errorf("mediator: no handler for %s", requestType)
	}

	dispatch := handler.Handle
	for i := len(m.chain) - 1; i >= 0; i-- {
		middleware := m.chain[i]
		inner := dispatch
		dispatch = func(ctx context.Context, request Request) (Response, error) {
			return middleware(ctx, request, inner)
		}
	}

	return dispatch(ctx, request)
}

// RegisterHandler infers the request type from T, sparing callers the
// reflect boilerplate at the wiring site.
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}

package mediator

import (
	"context"
)

// Request is any colony command or query routed through the mediator.
type Request interface{}

// Response is whatever the matching handler returns.
type Response interface{}

// RequestHandler executes one request kind.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a plain function into a RequestHandler.
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Handle calls f(ctx, request).
func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware wraps dispatch with a cross-cutting concern (tracing, timing)
// and decides whether and how to call next.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

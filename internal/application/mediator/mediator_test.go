package mediator_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
)

type pingRequest struct{}

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return "pong", nil
}

func TestMediator_SendDispatchesToRegisteredHandler(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingRequest](med, &pingHandler{}))

	response, err := med.Send(context.Background(), &pingRequest{})

	require.NoError(t, err)
	assert.Equal(t, "pong", response)
}

func TestMediator_SendUnregisteredType(t *testing.T) {
	med := mediator.NewMediator()

	_, err := med.Send(context.Background(), &pingRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler for")
}

func TestMediator_RegisterDuplicate(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingRequest](med, &pingHandler{}))

	err := mediator.RegisterHandler[*pingRequest](med, &pingHandler{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has a handler")
}

func TestMediator_MiddlewareRunsInRegistrationOrder(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingRequest](med, &pingHandler{}))

	var trace []string
	tracer := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			trace = append(trace, name)
			return next(ctx, request)
		}
	}
	med.RegisterMiddleware(tracer("outer"))
	med.RegisterMiddleware(tracer("inner"))

	response, err := med.Send(context.Background(), &pingRequest{})

	require.NoError(t, err)
	assert.Equal(t, "pong", response)
	assert.Equal(t, []string{"outer", "inner"}, trace)
}

func TestMediator_MiddlewareSeesHandlerError(t *testing.T) {
	med := mediator.NewMediator()
	failing := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, fmt.Errorf("handler broke")
	})
	require.NoError(t, mediator.RegisterHandler[*pingRequest](med, failing))

	var seen error
	med.RegisterMiddleware(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		response, err := next(ctx, request)
		seen = err
		return response, err
	})

	_, err := med.Send(context.Background(), &pingRequest{})

	require.Error(t, err)
	assert.Equal(t, err, seen)
}

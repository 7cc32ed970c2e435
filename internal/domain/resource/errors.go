package resource

import (
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/domain/shared"
)

// ResourceError is the base type for ledger errors
type ResourceError struct {
	*shared.DomainError
}

func NewResourceError(message string) *ResourceError {
	return &ResourceError{DomainError: &shared.DomainError{Message: message}}
}

// InsufficientResourceError is returned when a subtract would drive a
// quantity negative. The ledger is left unchanged.
type InsufficientResourceError struct {
	*ResourceError
	Kind      Kind
	Required  int
	Available int
}

func NewInsufficientResourceError(kind Kind, required, available int) *InsufficientResourceError {
	return &InsufficientResourceError{
		ResourceError: NewResourceError(fmt.Sprintf("insufficient %s: need %d, have %d", kind, required, available)),
		Kind:          kind,
		Required:      required,
		Available:     available,
	}
}

// UnknownResourceKindError is returned when a quantity is queried for a kind
// the ledger does not track
type UnknownResourceKindError struct {
	*ResourceError
	Kind Kind
}

func NewUnknownResourceKindError(kind Kind) *UnknownResourceKindError {
	return &UnknownResourceKindError{
		ResourceError: NewResourceError(fmt.Sprintf("unknown resource kind: %s", kind)),
		Kind:          kind,
	}
}

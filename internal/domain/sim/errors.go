package sim

import (
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/domain/shared"
)

// InvalidIndexError is returned when a management command references a
// nonexistent colonist or building
type InvalidIndexError struct {
	*shared.DomainError
	What  string
	Index int
	Size  int
}

func NewInvalidIndexError(what string, index, size int) *InvalidIndexError {
	return &InvalidIndexError{
		DomainError: shared.NewDomainError(fmt.Sprintf("invalid %s index %d (have %d)", what, index, size)),
		What:        what,
		Index:       index,
		Size:        size,
	}
}

// RunFinishedError is returned when a cycle is requested on an ended run
type RunFinishedError struct {
	*shared.DomainError
	Turn int
}

func NewRunFinishedError(turn int) *RunFinishedError {
	return &RunFinishedError{
		DomainError: shared.NewDomainError(fmt.Sprintf("run already ended after turn %d", turn)),
		Turn:        turn,
	}
}

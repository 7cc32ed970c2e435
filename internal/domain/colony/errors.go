package colony

import (
	"fmt"

	"github.com/andrescamacho/stellar-homestead/internal/domain/shared"
)

// ColonistError is the base type for colonist errors
type ColonistError struct {
	*shared.DomainError
}

func NewColonistError(message string) *ColonistError {
	return &ColonistError{DomainError: &shared.DomainError{Message: message}}
}

// ColonistIncapacitatedError is returned when work is attempted below the
// health threshold. Non-fatal: the colonist's contribution is skipped.
type ColonistIncapacitatedError struct {
	*ColonistError
	Name   string
	Health int
}

func NewColonistIncapacitatedError(name string, health int) *ColonistIncapacitatedError {
	return &ColonistIncapacitatedError{
		ColonistError: NewColonistError(fmt.Sprintf("%s is too sick to work (health %d)", name, health)),
		Name:          name,
		Health:        health,
	}
}

// ColonistDeceasedError is returned when damage drives health to zero.
// The caller must remove the colonist from the roster on this outcome.
type ColonistDeceasedError struct {
	*ColonistError
	Name string
}

func NewColonistDeceasedError(name string) *ColonistDeceasedError {
	return &ColonistDeceasedError{
		ColonistError: NewColonistError(fmt.Sprintf("%s has died", name)),
		Name:          name,
	}
}

// InvalidBuildingKindError is returned when a build request names a kind
// outside the closed variant set
type InvalidBuildingKindError struct {
	*shared.DomainError
	Kind BuildingKind
}

func NewInvalidBuildingKindError(kind BuildingKind) *InvalidBuildingKindError {
	return &InvalidBuildingKindError{
		DomainError: shared.NewDomainError(fmt.Sprintf("invalid building kind: %s", kind)),
		Kind:        kind,
	}
}

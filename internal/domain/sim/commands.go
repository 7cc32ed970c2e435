package sim

import "github.com/andrescamacho/stellar-homestead/internal/domain/colony"

// Command is a management-phase decision. The set is closed; drivers return
// NoOp to end their turn (a missing or invalid decision is treated the same
// way, never as an error that aborts the run).
type Command interface {
	isCommand()
}

// Build constructs a new building of the given kind, debiting its cost.
// Rejected with InsufficientResourceError when unaffordable; no state change.
type Build struct {
	Kind colony.BuildingKind
}

// AssignColonist marks the colonist at the given roster index as assigned.
// Rejected with InvalidIndexError when out of range.
type AssignColonist struct {
	Index int
}

// UpgradeBuilding raises the level of the building at the given index.
// Rejected with InvalidIndexError when out of range.
type UpgradeBuilding struct {
	Index int
}

// RestAll rests every colonist on the roster
type RestAll struct{}

// NoOp ends the management phase without acting
type NoOp struct{}

func (Build) isCommand()           {}
func (AssignColonist) isCommand()  {}
func (UpgradeBuilding) isCommand() {}
func (RestAll) isCommand()         {}
func (NoOp) isCommand()            {}

package sim

import (
	"github.com/andrescamacho/stellar-homestead/internal/domain/event"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

// Outcome is the terminal verdict of a run
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// FiredEvent records the event phase result for one cycle
type FiredEvent struct {
	Kind        event.Kind
	Name        string
	Description string
	Roll        int
	// Responder names the colonist whose side effect fired (the repairing
	// Engineer on a solar storm); empty otherwise.
	Responder string
}

// CycleReport is what one full Production -> Event -> Management cycle
// returned to the driver: totals, warnings, the event fired and where the
// run stands afterwards.
type CycleReport struct {
	// Turn is the cycle that just ran
	Turn int

	// Production is the summed producer output applied to the ledger
	Production resource.Delta

	// Consumption is the per-turn upkeep debit that was attempted
	Consumption resource.Delta

	// ConsumptionFailed is set when the upkeep debit was rejected for
	// insufficient resources (a leading indicator for the loss condition)
	ConsumptionFailed bool

	// Event is the perturbation that fired this cycle, nil on a peaceful turn
	Event *FiredEvent

	// Roll is the event-phase die roll, recorded even when no event fired
	Roll int

	// Warnings collects non-fatal per-producer and command failures
	Warnings []string

	// Phase and NextTurn describe the run after the cycle
	Phase    Phase
	NextTurn int

	// Terminal is set when the run ended this cycle; Outcome and Reason say how
	Terminal bool
	Outcome  Outcome
	Reason   string
}

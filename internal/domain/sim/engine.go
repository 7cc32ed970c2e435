// Package sim contains the simulation core: the phase state machine and the
// engine that sequences production, events, management and termination for
// one colony run.
package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/event"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

// Win and loss thresholds
const (
	winTurn      = 10
	winColonists = 3
)

// Per-turn upkeep rates
const (
	foodPerColonist   = 3
	oxygenPerColonist = 2
	energyPerBuilding = 2
)

// Engine owns all mutable state of one run: ledger, buildings, roster and
// the phase machine. It is single-threaded by design - one cycle runs to
// completion before the next begins, and nothing else touches the state.
// A caller wrapping it in a real-time surface must serialize access.
type Engine struct {
	runID     string
	state     *State
	ledger    *resource.Ledger
	buildings []*colony.Building
	colonists []*colony.Colonist
	catalog   *event.Catalog
	roller    Roller
}

// NewEngine establishes a fresh colony: the default ledger, the founding
// roster of three and the two starting structures.
func NewEngine(roller Roller) *Engine {
	if roller == nil {
		roller = NewRandRoller(0)
	}

	solar, _ := colony.NewBuilding(colony.SolarPanel)
	greenhouse, _ := colony.NewBuilding(colony.Greenhouse)

	return &Engine{
		runID:  uuid.NewString(),
		state:  NewState(),
		ledger: resource.NewLedger(),
		buildings: []*colony.Building{
			solar,
			greenhouse,
		},
		colonists: []*colony.Colonist{
			colony.NewColonist("Alex Chen", colony.Engineer),
			colony.NewColonist("Maria Santos", colony.Scientist),
			colony.NewColonist("James Wilson", colony.Farmer),
		},
		catalog: event.NewCatalog(),
		roller:  roller,
	}
}

// ReconstructEngine restores a run from persisted state.
// This bypasses the founding defaults and is used by the repository.
func ReconstructEngine(
	runID string,
	state *State,
	ledger *resource.Ledger,
	buildings []*colony.Building,
	colonists []*colony.Colonist,
	roller Roller,
) *Engine {
	if roller == nil {
		roller = NewRandRoller(0)
	}
	return &Engine{
		runID:     runID,
		state:     state,
		ledger:    ledger,
		buildings: buildings,
		colonists: colonists,
		catalog:   event.NewCatalog(),
		roller:    roller,
	}
}

// AdvanceCycle runs one Production -> Event -> Management cycle, pulling
// zero or more decisions from driver during Management, and reports what
// happened. Termination is evaluated once, after Management and before the
// turn increments; Win is checked before Lose.
//
// A run restored mid-cycle (a save issued from the management menu persists
// the machine in the Management phase) resumes at its saved phase: only the
// remaining steps of the interrupted cycle execute, so production and the
// event roll are never replayed for a turn that already had them.
func (e *Engine) AdvanceCycle(driver Driver) (*CycleReport, error) {
	if !e.state.Running() {
		return nil, NewRunFinishedError(e.state.Turn())
	}

	report := &CycleReport{Turn: e.state.Turn()}

	if e.state.Phase() == PhaseSetup {
		e.state.Next()
	}

	if e.state.Phase() == PhaseProduction {
		e.runProduction(report)
		e.state.Next()
	}

	if e.state.Phase() == PhaseEvent {
		e.runEvent(report)
		e.state.Next()
	}

	e.runManagement(driver, report)

	if outcome, reason := e.checkTermination(); outcome != OutcomeNone {
		e.state.End()
		report.Terminal = true
		report.Outcome = outcome
		report.Reason = reason
		report.Phase = e.state.Phase()
		report.NextTurn = e.state.Turn()
		return report, nil
	}

	e.state.Next()
	report.Phase = e.state.Phase()
	report.NextTurn = e.state.Turn()
	return report, nil
}

// runProduction aggregates producer deltas in fixed order - buildings first,
// then eligible colonists - applies the sum in one Add, then attempts the
// upkeep debit. Per-producer failures and an unaffordable upkeep are
// warnings, never aborts.
func (e *Engine) runProduction(report *CycleReport) {
	total := resource.Delta{}

	for _, b := range e.buildings {
		if b.Operational() {
			total.Accumulate(b.Produce())
		}
	}

	for _, c := range e.colonists {
		if !c.CanWork() {
			continue
		}
		output, err := c.Work()
		if err != nil {
			report.Warnings = append(report.Warnings, err.Error())
			continue
		}
		total.Accumulate(output)
	}

	e.ledger.Add(total)
	report.Production = total

	consumption := resource.Delta{
		resource.Food:   foodPerColonist * len(e.colonists),
		resource.Oxygen: oxygenPerColonist * len(e.colonists),
		resource.Energy: energyPerBuilding * len(e.buildings),
	}
	report.Consumption = consumption

	if err := e.ledger.Subtract(consumption); err != nil {
		report.ConsumptionFailed = true
		report.Warnings = append(report.Warnings, fmt.Sprintf("upkeep not met: %v", err))
	}
}

// runEvent draws one roll and resolves it against the catalog
func (e *Engine) runEvent(report *CycleReport) {
	roll := e.roller.Roll()
	report.Roll = roll

	ev := e.catalog.Select(roll)
	if ev == nil {
		return
	}

	fired := &FiredEvent{
		Kind:        ev.Kind(),
		Name:        ev.Name(),
		Description: ev.Description(),
		Roll:        roll,
	}
	if responder := ev.Execute(e.ledger, e.colonists); responder != nil {
		fired.Responder = responder.Name()
	}
	report.Event = fired
}

// runManagement pulls decisions from the driver until it returns NoOp.
// Rejected commands are surfaced back to the driver and recorded as
// warnings; they never mutate state or abort the run.
func (e *Engine) runManagement(driver Driver, report *CycleReport) {
	if driver == nil {
		return
	}

	var rejected error
	for {
		cmd := driver.NextCommand(e.Snapshot(), rejected)
		if cmd == nil {
			return
		}
		if _, ok := cmd.(NoOp); ok {
			return
		}
		rejected = e.Apply(cmd)
		if rejected != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("command rejected: %v", rejected))
		}
	}
}

// Apply executes one management command against the run. Failures reject
// the command with no state change.
func (e *Engine) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case Build:
		b, err := colony.NewBuilding(c.Kind)
		if err != nil {
			return err
		}
		if err := e.ledger.Subtract(b.Cost()); err != nil {
			return err
		}
		e.buildings = append(e.buildings, b)
		return nil

	case AssignColonist:
		if c.Index < 0 || c.Index >= len(e.colonists) {
			return NewInvalidIndexError("colonist", c.Index, len(e.colonists))
		}
		e.colonists[c.Index].SetAssigned(true)
		return nil

	case UpgradeBuilding:
		if c.Index < 0 || c.Index >= len(e.buildings) {
			return NewInvalidIndexError("building", c.Index, len(e.buildings))
		}
		e.buildings[c.Index].Upgrade()
		return nil

	case RestAll:
		for _, col := range e.colonists {
			col.Rest()
		}
		return nil

	default:
		// Unknown commands are a no-op "continue", never an error
		return nil
	}
}

// ApplyDamage injures the colonist at index. When health reaches zero the
// roster entry is removed and the ColonistDeceasedError is returned so the
// caller knows who was lost.
func (e *Engine) ApplyDamage(index, amount int) error {
	if index < 0 || index >= len(e.colonists) {
		return NewInvalidIndexError("colonist", index, len(e.colonists))
	}

	err := e.colonists[index].TakeDamage(amount)
	var deceased *colony.ColonistDeceasedError
	if errors.As(err, &deceased) {
		e.colonists = append(e.colonists[:index], e.colonists[index+1:]...)
	}
	return err
}

// checkTermination evaluates the end conditions. Win first, then the loss
// conditions; the order makes the two mutually exclusive.
func (e *Engine) checkTermination() (Outcome, string) {
	if e.state.Turn() >= winTurn && len(e.colonists) >= winColonists {
		return OutcomeWin, fmt.Sprintf("colony thrived for %d turns", winTurn)
	}

	food, errFood := e.ledger.Quantity(resource.Food)
	oxygen, errOxygen := e.ledger.Quantity(resource.Oxygen)
	if errFood != nil || errOxygen != nil || food <= 0 || oxygen <= 0 {
		return OutcomeLoss, "the colony ran out of essential resources"
	}

	if len(e.colonists) == 0 {
		return OutcomeLoss, "all colonists have perished"
	}

	return OutcomeNone, ""
}

// Snapshot returns a consistent read-only view of the run
func (e *Engine) Snapshot() Snapshot {
	buildings := make([]BuildingView, len(e.buildings))
	for i, b := range e.buildings {
		buildings[i] = BuildingView{
			Kind:        b.Kind(),
			Name:        b.Name(),
			Level:       b.Level(),
			Operational: b.Operational(),
			Output:      b.OutputKind(),
		}
	}

	colonists := make([]ColonistView, len(e.colonists))
	for i, c := range e.colonists {
		colonists[i] = ColonistView{
			ID:             c.ID(),
			Name:           c.Name(),
			Specialization: c.Specialization(),
			Experience:     c.Experience(),
			Health:         c.Health(),
			Assigned:       c.Assigned(),
		}
	}

	return Snapshot{
		RunID:     e.runID,
		Phase:     e.state.Phase(),
		Turn:      e.state.Turn(),
		Running:   e.state.Running(),
		Resources: e.ledger.Snapshot(),
		Buildings: buildings,
		Colonists: colonists,
	}
}

func (e *Engine) RunID() string { return e.runID }

func (e *Engine) Phase() Phase { return e.state.Phase() }

func (e *Engine) Turn() int { return e.state.Turn() }

func (e *Engine) Running() bool { return e.state.Running() }

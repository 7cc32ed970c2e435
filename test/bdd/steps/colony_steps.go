package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

type fixedRoller struct {
	roll int
}

func (r fixedRoller) Roll() int { return r.roll }

type colonyRunContext struct {
	roll       int
	quantities map[resource.Kind]int
	roster     []*colony.Colonist
	custom     bool

	engine     *sim.Engine
	pending    []sim.Command
	lastReport *sim.CycleReport
}

func (cc *colonyRunContext) reset() {
	cc.roll = 100
	cc.quantities = nil
	cc.roster = nil
	cc.custom = false
	cc.engine = nil
	cc.pending = nil
	cc.lastReport = nil
}

// ensureEngine builds the run lazily so Given steps can finish shaping it
func (cc *colonyRunContext) ensureEngine() {
	if cc.engine != nil {
		return
	}

	if !cc.custom {
		cc.engine = sim.NewEngine(fixedRoller{roll: cc.roll})
		return
	}

	ledger := resource.NewLedger()
	if cc.quantities != nil {
		ledger = resource.ReconstructLedger(cc.quantities)
	}
	cc.engine = sim.ReconstructEngine(
		"bdd-run",
		sim.NewState(),
		ledger,
		nil,
		cc.roster,
		fixedRoller{roll: cc.roll},
	)
}

// Given steps

func (cc *colonyRunContext) aFreshColonyRun() error {
	return nil
}

func (cc *colonyRunContext) theEventDiceArePinnedToRoll(roll int) error {
	if cc.engine != nil {
		return fmt.Errorf("the run has already started")
	}
	cc.roll = roll
	return nil
}

func (cc *colonyRunContext) aColonyRunWithResources(table *godog.Table) error {
	if len(table.Rows) != 2 {
		return fmt.Errorf("expected a header row and one value row")
	}

	cc.custom = true
	cc.quantities = make(map[resource.Kind]int)
	for i, cell := range table.Rows[0].Cells {
		kind, err := resource.ParseKind(cell.Value)
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(table.Rows[1].Cells[i].Value)
		if err != nil {
			return err
		}
		cc.quantities[kind] = quantity
	}
	return nil
}

func (cc *colonyRunContext) aRosterOf(table *godog.Table) error {
	cc.custom = true
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		name := strings.TrimSpace(row.Cells[0].Value)
		specialization := colony.Specialization(strings.TrimSpace(row.Cells[1].Value))
		cc.roster = append(cc.roster, colony.NewColonist(name, specialization))
	}
	return nil
}

// When steps

func (cc *colonyRunContext) iAdvanceOneCycle() error {
	return cc.iAdvanceCycles(1)
}

func (cc *colonyRunContext) iAdvanceCycles(count int) error {
	cc.ensureEngine()
	for i := 0; i < count; i++ {
		driver := sim.NewScriptedDriver(cc.pending)
		cc.pending = nil

		report, err := cc.engine.AdvanceCycle(driver)
		if err != nil {
			return err
		}
		cc.lastReport = report
	}
	return nil
}

func (cc *colonyRunContext) iBuildDuringManagement(kind string) error {
	parsed, err := colony.ParseBuildingKind(kind)
	if err != nil {
		return err
	}
	cc.pending = append(cc.pending, sim.Build{Kind: parsed})
	return nil
}

// Then steps

func (cc *colonyRunContext) theColonyShouldHaveResource(quantity int, kind string) error {
	parsed, err := resource.ParseKind(kind)
	if err != nil {
		return err
	}

	got := cc.engine.Snapshot().Resources[parsed]
	if got != quantity {
		return fmt.Errorf("expected %d %s, got %d", quantity, kind, got)
	}
	return nil
}

func (cc *colonyRunContext) theColonyShouldHaveBuildings(count int) error {
	got := len(cc.engine.Snapshot().Buildings)
	if got != count {
		return fmt.Errorf("expected %d buildings, got %d", count, got)
	}
	return nil
}

func (cc *colonyRunContext) theEventShouldHaveFired(name string) error {
	if cc.lastReport == nil || cc.lastReport.Event == nil {
		return fmt.Errorf("no event fired")
	}
	if cc.lastReport.Event.Name != name {
		return fmt.Errorf("expected event %q, got %q", name, cc.lastReport.Event.Name)
	}
	return nil
}

func (cc *colonyRunContext) noEventShouldHaveFired() error {
	if cc.lastReport == nil {
		return fmt.Errorf("no cycle has run")
	}
	if cc.lastReport.Event != nil {
		return fmt.Errorf("unexpected event %q", cc.lastReport.Event.Name)
	}
	return nil
}

func (cc *colonyRunContext) shouldHaveResponded(name string) error {
	if cc.lastReport == nil || cc.lastReport.Event == nil {
		return fmt.Errorf("no event fired")
	}
	if cc.lastReport.Event.Responder != name {
		return fmt.Errorf("expected responder %q, got %q", name, cc.lastReport.Event.Responder)
	}
	return nil
}

func (cc *colonyRunContext) theRunShouldEndWithOutcome(outcome string) error {
	if cc.lastReport == nil {
		return fmt.Errorf("no cycle has run")
	}
	if !cc.lastReport.Terminal {
		return fmt.Errorf("the run is still in progress")
	}
	if string(cc.lastReport.Outcome) != outcome {
		return fmt.Errorf("expected outcome %q, got %q", outcome, cc.lastReport.Outcome)
	}
	return nil
}

func (cc *colonyRunContext) theRunShouldStillBeInProgress() error {
	if !cc.engine.Running() {
		return fmt.Errorf("the run has ended")
	}
	return nil
}

func (cc *colonyRunContext) theCycleShouldWarnAboutUnmetUpkeep() error {
	if cc.lastReport == nil {
		return fmt.Errorf("no cycle has run")
	}
	if !cc.lastReport.ConsumptionFailed {
		return fmt.Errorf("upkeep was met")
	}
	for _, warning := range cc.lastReport.Warnings {
		if strings.Contains(warning, "upkeep not met") {
			return nil
		}
	}
	return fmt.Errorf("no upkeep warning in %v", cc.lastReport.Warnings)
}

// InitializeColonyRunScenario registers the colony run step definitions
func InitializeColonyRunScenario(sc *godog.ScenarioContext) {
	cc := &colonyRunContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^a fresh colony run$`, cc.aFreshColonyRun)
	sc.Step(`^the event dice are pinned to roll (\d+)$`, cc.theEventDiceArePinnedToRoll)
	sc.Step(`^a colony run with resources:$`, cc.aColonyRunWithResources)
	sc.Step(`^a roster of:$`, cc.aRosterOf)

	sc.Step(`^I advance one cycle$`, cc.iAdvanceOneCycle)
	sc.Step(`^I advance (\d+) cycles$`, cc.iAdvanceCycles)
	sc.Step(`^I build a "([^"]*)" during management$`, cc.iBuildDuringManagement)

	sc.Step(`^the colony should have (\d+) (food|energy|materials|oxygen)$`, cc.theColonyShouldHaveResource)
	sc.Step(`^the colony should have (\d+) buildings$`, cc.theColonyShouldHaveBuildings)
	sc.Step(`^the event "([^"]*)" should have fired$`, cc.theEventShouldHaveFired)
	sc.Step(`^no event should have fired$`, cc.noEventShouldHaveFired)
	sc.Step(`^"([^"]*)" should have responded to the emergency$`, cc.shouldHaveResponded)
	sc.Step(`^the run should end with outcome "(win|loss)"$`, cc.theRunShouldEndWithOutcome)
	sc.Step(`^the run should still be in progress$`, cc.theRunShouldStillBeInProgress)
	sc.Step(`^the cycle should warn about unmet upkeep$`, cc.theCycleShouldWarnAboutUnmetUpkeep)
}

package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/cli"
	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

func TestParseScript(t *testing.T) {
	script := `
# first turn: expand production
build solar_panel
upgrade 0
end

# second turn: recover
rest
assign 1
end
`

	cmds, err := cli.ParseScript(strings.NewReader(script))

	require.NoError(t, err)
	assert.Equal(t, []sim.Command{
		sim.Build{Kind: colony.SolarPanel},
		sim.UpgradeBuilding{Index: 0},
		sim.NoOp{},
		sim.RestAll{},
		sim.AssignColonist{Index: 1},
		sim.NoOp{},
	}, cmds)
}

func TestParseScript_UnknownCommand(t *testing.T) {
	_, err := cli.ParseScript(strings.NewReader("demolish 0\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseScript_InvalidBuildingKind(t *testing.T) {
	_, err := cli.ParseScript(strings.NewReader("build casino\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid building kind")
}

func TestParseScript_InvalidIndex(t *testing.T) {
	_, err := cli.ParseScript(strings.NewReader("assign two\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid index")
}

func TestInteractiveDriver_MenuChoices(t *testing.T) {
	engine := sim.NewEngine(nil)
	snapshot := engine.Snapshot()

	// Rest, then a build (solar panel is option 1), then continue
	input := "3\n1\n1\nx\n"
	var out strings.Builder
	driver := cli.NewInteractiveDriver(strings.NewReader(input), &out, nil)

	assert.Equal(t, sim.RestAll{}, driver.NextCommand(snapshot, nil))
	assert.Equal(t, sim.Build{Kind: colony.SolarPanel}, driver.NextCommand(snapshot, nil))
	assert.Equal(t, sim.NoOp{}, driver.NextCommand(snapshot, nil))
}

func TestInteractiveDriver_EOFEndsPhase(t *testing.T) {
	engine := sim.NewEngine(nil)

	var out strings.Builder
	driver := cli.NewInteractiveDriver(strings.NewReader(""), &out, nil)

	assert.Equal(t, sim.NoOp{}, driver.NextCommand(engine.Snapshot(), nil))
}

func TestInteractiveDriver_ReportsRejection(t *testing.T) {
	engine := sim.NewEngine(nil)

	var out strings.Builder
	driver := cli.NewInteractiveDriver(strings.NewReader(""), &out, nil)

	driver.NextCommand(engine.Snapshot(), sim.NewInvalidIndexError("building", 9, 2))

	assert.Contains(t, out.String(), "Rejected:")
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// interactiveDriver prompts for management decisions on a terminal. Invalid
// input ends the management phase instead of erroring, so a run can never be
// wedged by a typo.
type interactiveDriver struct {
	in   *bufio.Scanner
	out  io.Writer
	save func() error
}

// NewInteractiveDriver creates a menu-based driver reading from in. save may
// be nil when persistence is disabled.
func NewInteractiveDriver(in io.Reader, out io.Writer, save func() error) sim.Driver {
	return &interactiveDriver{
		in:   bufio.NewScanner(in),
		out:  out,
		save: save,
	}
}

func (d *interactiveDriver) NextCommand(s sim.Snapshot, rejected error) sim.Command {
	if rejected != nil {
		fmt.Fprintf(d.out, "Rejected: %v\n", rejected)
	}

	for {
		fmt.Fprintln(d.out, "\n--- Management Phase ---")
		fmt.Fprintln(d.out, "1. Build structure")
		fmt.Fprintln(d.out, "2. Assign colonist to work")
		fmt.Fprintln(d.out, "3. Rest all colonists")
		fmt.Fprintln(d.out, "4. Upgrade building")
		if d.save != nil {
			fmt.Fprintln(d.out, "5. Save run")
		}
		fmt.Fprintln(d.out, "Anything else continues to the next turn")
		fmt.Fprint(d.out, "> ")

		line, ok := d.readLine()
		if !ok {
			return sim.NoOp{}
		}

		switch line {
		case "1":
			return d.promptBuild()
		case "2":
			return d.promptAssign(s)
		case "3":
			return sim.RestAll{}
		case "4":
			return d.promptUpgrade(s)
		case "5":
			if d.save == nil {
				return sim.NoOp{}
			}
			if err := d.save(); err != nil {
				fmt.Fprintf(d.out, "Save failed: %v\n", err)
			} else {
				fmt.Fprintln(d.out, "Run saved")
			}
			// Stay in the menu after saving
		default:
			return sim.NoOp{}
		}
	}
}

// promptBuild lists the buildable kinds with costs and reads a choice
func (d *interactiveDriver) promptBuild() sim.Command {
	kinds := colony.BuildingKinds()
	for i, kind := range kinds {
		cost, err := colony.BuildingCost(kind)
		if err != nil {
			continue
		}
		fmt.Fprintf(d.out, "%d. %s (cost: %s)\n", i+1, kind, formatDelta(cost))
	}
	fmt.Fprint(d.out, "Build which? ")

	n, ok := d.readIndex(len(kinds))
	if !ok {
		return sim.NoOp{}
	}
	return sim.Build{Kind: kinds[n]}
}

// promptAssign lists the roster and reads a choice
func (d *interactiveDriver) promptAssign(s sim.Snapshot) sim.Command {
	for i, c := range s.Colonists {
		fmt.Fprintf(d.out, "%d. %s (%s, health %d, exp %d)\n",
			i+1, c.Name, c.Specialization, c.Health, c.Experience)
	}
	fmt.Fprint(d.out, "Assign whom? ")

	n, ok := d.readIndex(len(s.Colonists))
	if !ok {
		return sim.NoOp{}
	}
	return sim.AssignColonist{Index: n}
}

// promptUpgrade lists the buildings and reads a choice
func (d *interactiveDriver) promptUpgrade(s sim.Snapshot) sim.Command {
	for i, b := range s.Buildings {
		fmt.Fprintf(d.out, "%d. %s (level %d)\n", i+1, b.Name, b.Level)
	}
	fmt.Fprint(d.out, "Upgrade which? ")

	n, ok := d.readIndex(len(s.Buildings))
	if !ok {
		return sim.NoOp{}
	}
	return sim.UpgradeBuilding{Index: n}
}

// readIndex reads a 1-based menu choice and returns it 0-based
func (d *interactiveDriver) readIndex(size int) (int, bool) {
	line, ok := d.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > size {
		fmt.Fprintln(d.out, "Invalid choice")
		return 0, false
	}
	return n - 1, true
}

func (d *interactiveDriver) readLine() (string, bool) {
	if !d.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(d.in.Text()), true
}

// ParseScript reads a decision script, one command per line. Blank lines and
// lines starting with # are skipped.
//
// Commands:
//
//	build <kind>      construct a building (e.g. build solar_panel)
//	assign <index>    assign the colonist at 0-based roster index
//	upgrade <index>   upgrade the building at 0-based index
//	rest              rest all colonists
//	end               end the current management phase
func ParseScript(r io.Reader) ([]sim.Command, error) {
	var cmds []sim.Command

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "build":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: build takes one argument", lineNo)
			}
			kind, err := colony.ParseBuildingKind(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cmds = append(cmds, sim.Build{Kind: kind})

		case "assign":
			index, err := parseScriptIndex(fields, lineNo)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, sim.AssignColonist{Index: index})

		case "upgrade":
			index, err := parseScriptIndex(fields, lineNo)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, sim.UpgradeBuilding{Index: index})

		case "rest":
			cmds = append(cmds, sim.RestAll{})

		case "end":
			cmds = append(cmds, sim.NoOp{})

		default:
			return nil, fmt.Errorf("line %d: unknown command %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return cmds, nil
}

func parseScriptIndex(fields []string, lineNo int) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("line %d: %s takes one argument", lineNo, fields[0])
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid index %q", lineNo, fields[1])
	}
	return index, nil
}

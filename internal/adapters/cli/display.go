package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// displaySnapshot renders the colony status tables
func displaySnapshot(out io.Writer, s sim.Snapshot) {
	fmt.Fprintf(out, "\n=== Turn %d (%s) ===\n", s.Turn, s.Phase)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tQUANTITY")
	for _, kind := range resource.Kinds() {
		fmt.Fprintf(w, "%s\t%d\n", kind, s.Resources[kind])
	}
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUILDING\tLEVEL\tOUTPUT\tOPERATIONAL")
	for _, b := range s.Buildings {
		fmt.Fprintf(w, "%s\t%d\t%s\t%t\n", b.Name, b.Level, b.Output, b.Operational)
	}
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLONIST\tROLE\tHEALTH\tEXP\tASSIGNED")
	for _, c := range s.Colonists {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%t\n",
			c.Name, c.Specialization, c.Health, c.Experience, c.Assigned)
	}
	w.Flush()
}

// displayCycleReport renders what one cycle did
func displayCycleReport(out io.Writer, report *sim.CycleReport) {
	fmt.Fprintf(out, "\n--- Turn %d results ---\n", report.Turn)
	fmt.Fprintf(out, "Produced: %s\n", formatDelta(report.Production))
	fmt.Fprintf(out, "Consumed: %s\n", formatDelta(report.Consumption))
	if report.ConsumptionFailed {
		fmt.Fprintln(out, "Upkeep could not be met this turn!")
	}

	if report.Event != nil {
		fmt.Fprintf(out, "Event (roll %d): %s - %s\n",
			report.Roll, report.Event.Name, report.Event.Description)
		if report.Event.Responder != "" {
			fmt.Fprintf(out, "%s responded to the emergency\n", report.Event.Responder)
		}
	} else {
		fmt.Fprintf(out, "Event (roll %d): all quiet\n", report.Roll)
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
}

// displayOutcome renders the terminal verdict
func displayOutcome(out io.Writer, report *sim.CycleReport) {
	switch report.Outcome {
	case sim.OutcomeWin:
		fmt.Fprintf(out, "\nVICTORY: %s\n", report.Reason)
	case sim.OutcomeLoss:
		fmt.Fprintf(out, "\nDEFEAT: %s\n", report.Reason)
	}
}

// formatDelta renders a resource delta in fixed kind order
func formatDelta(d resource.Delta) string {
	if len(d) == 0 {
		return "nothing"
	}

	var parts []string
	for _, kind := range resource.Kinds() {
		if v, ok := d[kind]; ok {
			parts = append(parts, fmt.Sprintf("%s %+d", kind, v))
		}
	}
	// Any kinds outside the canonical set keep their values but render last
	for kind, v := range d {
		if !kind.IsValid() {
			parts = append(parts, fmt.Sprintf("%s %+d", kind, v))
		}
	}
	return strings.Join(parts, ", ")
}

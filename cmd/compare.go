package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/refstring"
)

var (
	compareRefs      string
	compareFrames    int
	compareMaxFrames int
	comparePolicies  []string // empty means all
)

// compareCmd runs several policies side by side on one input
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare replacement policies on the same reference string",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		resolved, err := Scenario{
			Name:       "compare",
			References: compareRefs,
			Frames:     compareFrames,
			Policies:   comparePolicies,
		}.Resolve(compareMaxFrames)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		results, err := sim.SimulateAll(resolved.References, resolved.Frames, resolved.Policies)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeComparison(cmd.OutOrStdout(), resolved.References, results); err != nil {
			logrus.Fatalf("Failed to write comparison: %v", err)
		}
	},
}

// writeComparison prints one row per policy, best (fewest faults) first marked with *.
func writeComparison(w io.Writer, refs []int, results []*sim.SimulationResult) error {
	if len(results) == 0 {
		return nil
	}
	fmt.Fprintf(w, "References: %s\nFrames: %d\n\n", refstring.Format(refs), results[0].Capacity)

	best := results[0].Faults
	for _, r := range results[1:] {
		best = min(best, r.Faults)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Policy\tFaults\tHits\tEvictions\tFault Ratio\tHit Ratio\t")
	for _, r := range results {
		marker := ""
		if r.Faults == best {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%d\t%d\t%d\t%.2f%%\t%.2f%%\t\n",
			r.Policy, marker, r.Faults, r.Hits, r.Evictions(), r.FaultRatio()*100, r.HitRatio()*100)
	}
	return tw.Flush()
}

func init() {
	compareCmd.Flags().StringVar(&compareRefs, "refs", defaultReferences, "Reference string (page numbers separated by spaces or commas)")
	compareCmd.Flags().IntVar(&compareFrames, "frames", 3, "Number of physical frames")
	compareCmd.Flags().IntVar(&compareMaxFrames, "max-frames", 10, "Largest frame count accepted")
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policies (default all)")

	rootCmd.AddCommand(compareCmd)
}

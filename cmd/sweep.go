package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
)

var (
	sweepRefs      string
	sweepMaxFrames int
	sweepPolicies  []string
)

// sweepCmd reports fault counts across frame capacities and flags Belady's anomaly
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Fault counts for 1..max-frames frames, with Belady's anomaly detection",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		resolved, err := Scenario{
			Name:       "sweep",
			References: sweepRefs,
			Frames:     sweepMaxFrames,
			Policies:   sweepPolicies,
		}.Resolve(0)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		sweeps := make(map[sim.Policy][]sim.SweepPoint, len(resolved.Policies))
		for _, policy := range resolved.Policies {
			points, err := sim.Sweep(resolved.References, resolved.Frames, policy)
			if err != nil {
				logrus.Fatalf("Sweep failed: %v", err)
			}
			sweeps[policy] = points
			if anomalies := sim.BeladyAnomalies(points); len(anomalies) > 0 {
				logrus.Infof("%s shows Belady's anomaly at %v frames", policy, anomalies)
			}
		}
		if err := writeSweep(cmd.OutOrStdout(), resolved.Policies, sweeps); err != nil {
			logrus.Fatalf("Failed to write sweep: %v", err)
		}
	},
}

// writeSweep prints a frames × policy fault table followed by any anomalies.
func writeSweep(w io.Writer, policies []sim.Policy, sweeps map[sim.Policy][]sim.SweepPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"Frames"}
	for _, p := range policies {
		header = append(header, string(p))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	rows := 0
	for _, p := range policies {
		rows = max(rows, len(sweeps[p]))
	}
	for i := 0; i < rows; i++ {
		cells := []string{strconv.Itoa(i + 1)}
		for _, p := range policies {
			cells = append(cells, strconv.Itoa(sweeps[p][i].Faults))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, p := range policies {
		for _, c := range sim.BeladyAnomalies(sweeps[p]) {
			points := sweeps[p]
			if _, err := fmt.Fprintf(w, "Belady's anomaly (%s): %d frames -> %d faults, %d frames -> %d faults\n",
				p, c, points[c-1].Faults, c+1, points[c].Faults); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	sweepCmd.Flags().StringVar(&sweepRefs, "refs", "1 2 3 4 1 2 5 1 2 3 4 5", "Reference string (page numbers separated by spaces or commas)")
	sweepCmd.Flags().IntVar(&sweepMaxFrames, "max-frames", 6, "Sweep capacities 1..max-frames")
	sweepCmd.Flags().StringSliceVar(&sweepPolicies, "policies", nil, "Comma-separated policies (default all)")

	rootCmd.AddCommand(sweepCmd)
}

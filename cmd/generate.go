package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim/refstring"
	"github.com/inference-sim/pagesim/sim/workload"
)

var (
	genSpecPath string
	genSpec     workload.Spec
	genPattern  string
)

// generateCmd prints a reproducible reference string
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a reference string (uniform, locality, loop)",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec := genSpec
		spec.Pattern = workload.Pattern(genPattern)
		if genSpecPath != "" {
			loaded, err := workload.LoadSpec(genSpecPath)
			if err != nil {
				logrus.Fatalf("Failed to load workload spec: %v", err)
			}
			spec = loaded
		}

		refs, err := workload.Generate(spec)
		if err != nil {
			logrus.Fatalf("Failed to generate references: %v", err)
		}
		logrus.Infof("Generated %d references (pattern=%s, seed=%d)", len(refs), spec.Pattern, spec.Seed)
		fmt.Fprintln(cmd.OutOrStdout(), refstring.Format(refs))
	},
}

func init() {
	generateCmd.Flags().StringVar(&genSpecPath, "spec", "", "YAML workload spec (overrides other flags)")
	generateCmd.Flags().StringVar(&genPattern, "pattern", string(workload.Locality), "Pattern (uniform, locality, loop)")
	generateCmd.Flags().IntVar(&genSpec.Length, "length", 20, "Number of references")
	generateCmd.Flags().IntVar(&genSpec.Pages, "pages", 10, "Page identifiers are drawn from [0, pages)")
	generateCmd.Flags().IntVar(&genSpec.WorkingSet, "working-set", 4, "Locality window or loop length")
	generateCmd.Flags().Float64Var(&genSpec.JumpProb, "jump-prob", 0.1, "Locality: chance per reference of moving the window")
	generateCmd.Flags().Int64Var(&genSpec.Seed, "seed", 42, "Seed for reproducible generation")

	rootCmd.AddCommand(generateCmd)
}

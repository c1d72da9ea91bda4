package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/playback"
	"github.com/inference-sim/pagesim/sim/trace"
)

const defaultReferences = "7 0 1 2 0 3 0 4 2 3 0 3 2 1 2"

var (
	logLevel string // Log verbosity level

	// CLI flags for the run command
	references   string  // Reference string, whitespace or comma separated
	frames       int     // Number of physical frames
	maxFrames    int     // Upper bound on frames accepted from the CLI or scenario files
	policyName   string  // Replacement policy
	configPath   string  // YAML scenario file; overrides references/frames/policy
	outputFormat string  // text, json or yaml
	traceLevel   string  // Eviction trace verbosity
	play         bool    // Animate the timeline step by step
	speed        float64 // Playback speed multiplier
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page replacement simulator for FIFO, LRU and Optimal policies",
}

// runCmd simulates one policy, or every scenario of a config file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a reference string under one replacement policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}
		if !isValidFormat(outputFormat) {
			logrus.Fatalf("Invalid output format: %s", outputFormat)
		}
		if err := playback.ValidateSpeed(speed); err != nil {
			logrus.Fatalf("%v", err)
		}

		var scenarios []Scenario
		if configPath != "" {
			file, err := LoadScenarioFile(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenarios: %v", err)
			}
			scenarios = file.Scenarios
			maxFrames = file.FrameLimit(maxFrames, cmd.Flags().Changed("max-frames"))
		} else {
			scenarios = []Scenario{{
				Name:       "cli",
				References: references,
				Frames:     frames,
				Policies:   []string{policyName},
			}}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		for _, sc := range scenarios {
			resolved, err := sc.Resolve(maxFrames)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Scenario %q: %d references, %d frames, policies=%v",
				sc.Name, len(resolved.References), resolved.Frames, resolved.Policies)

			for _, policy := range resolved.Policies {
				et := trace.NewEvictionTrace(trace.TraceLevel(traceLevel))
				result, err := sim.SimulateTraced(resolved.References, resolved.Frames, policy, et)
				if err != nil {
					logrus.Fatalf("Simulation failed: %v", err)
				}
				logSteps(result)

				if play {
					if err := playTimeline(ctx, out, result, speed); err != nil {
						logrus.Warnf("Playback stopped: %v", err)
						return
					}
					continue
				}
				if !et.Enabled() {
					et = nil
				}
				if err := writeResult(out, outputFormat, result, et); err != nil {
					logrus.Fatalf("Failed to write result: %v", err)
				}
			}
		}
		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies --log to the global logrus logger
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// logSteps emits one debug line per reference
func logSteps(result *sim.SimulationResult) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, s := range result.Steps[1:] {
		fields := logrus.Fields{
			"policy": result.Policy,
			"step":   s.Index,
			"page":   s.Page,
			"fault":  s.IsFault,
			"frames": s.Pages(sim.NoPage),
		}
		if s.Evicted() {
			fields["victim"] = *s.EvictedPage
			fields["slot"] = s.EvictedFrame
		}
		logrus.WithFields(fields).Debug("reference processed")
	}
}

// playTimeline prints each snapshot as the player reaches it
func playTimeline(ctx context.Context, w io.Writer, result *sim.SimulationResult, speed float64) error {
	player := playback.NewPlayer(result)
	if err := player.SetSpeed(speed); err != nil {
		return err
	}
	fmt.Fprintf(w, "=== %s ===\n", result.Policy.Description())
	var writeErr error
	err := player.Run(ctx, func(s sim.StepSnapshot) {
		if writeErr == nil {
			writeErr = writeStepLine(w, s, result.Prefix(s.Index), player.LastStep())
		}
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	return writeSummary(w, result)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&references, "refs", defaultReferences, "Reference string (page numbers separated by spaces or commas)")
	runCmd.Flags().IntVar(&frames, "frames", 3, "Number of physical frames")
	runCmd.Flags().IntVar(&maxFrames, "max-frames", 10, "Largest frame count accepted (0 = no limit)")
	runCmd.Flags().StringVar(&policyName, "policy", "fifo", "Replacement policy (fifo, lru, optimal)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file (overrides --refs, --frames and --policy)")
	runCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format (text, json, yaml)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Eviction trace level (none, evictions)")
	runCmd.Flags().BoolVar(&play, "play", false, "Animate the timeline one reference per tick")
	runCmd.Flags().Float64Var(&speed, "speed", playback.DefaultSpeed, "Playback speed (0.5 to 3 in steps of 0.5)")

	rootCmd.AddCommand(runCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/trace"
)

var validFormats = map[string]bool{"text": true, "json": true, "yaml": true}

func isValidFormat(format string) bool {
	return validFormats[format]
}

// resultOutput is the machine-readable form of one run.
type resultOutput struct {
	sim.SimulationResult `yaml:",inline"`
	HitRatio             float64              `json:"hit_ratio" yaml:"hit_ratio"`
	FaultRatio           float64              `json:"fault_ratio" yaml:"fault_ratio"`
	Trace                *trace.EvictionTrace `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// writeResult renders result in the given format. et may be nil.
func writeResult(w io.Writer, format string, result *sim.SimulationResult, et *trace.EvictionTrace) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newResultOutput(result, et))
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(newResultOutput(result, et)); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		if err := writeTimeline(w, result); err != nil {
			return err
		}
		if err := writeSummary(w, result); err != nil {
			return err
		}
		if et != nil {
			return writeTrace(w, et)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newResultOutput(result *sim.SimulationResult, et *trace.EvictionTrace) resultOutput {
	return resultOutput{
		SimulationResult: *result,
		HitRatio:         result.HitRatio(),
		FaultRatio:       result.FaultRatio(),
		Trace:            et,
	}
}

// writeTimeline prints one column per reference and one row per frame.
// A newly placed page is shown as [p], a hit as (p), an empty slot as -.
func writeTimeline(w io.Writer, result *sim.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	steps := result.Steps[1:]

	row := make([]string, 0, len(steps)+1)
	row = append(row, "Ref")
	for _, s := range steps {
		row = append(row, strconv.Itoa(s.Page))
	}
	writeRow(tw, row)

	for slot := 0; slot < result.Capacity; slot++ {
		row = append(row[:0], fmt.Sprintf("Frame %d", slot))
		for _, s := range steps {
			row = append(row, frameCell(s.Frames[slot]))
		}
		writeRow(tw, row)
	}

	row = append(row[:0], "Result")
	for _, s := range steps {
		row = append(row, faultMarker(s))
	}
	writeRow(tw, row)
	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cells []string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
}

func frameCell(f sim.FrameState) string {
	switch {
	case f.Empty():
		return "-"
	case f.IsNew:
		return "[" + strconv.Itoa(*f.Page) + "]"
	case f.IsHit:
		return "(" + strconv.Itoa(*f.Page) + ")"
	default:
		return strconv.Itoa(*f.Page)
	}
}

func faultMarker(s sim.StepSnapshot) string {
	if s.IsFault {
		return "F"
	}
	return "H"
}

// writeSummary displays totals and ratios for one run.
func writeSummary(w io.Writer, result *sim.SimulationResult) error {
	_, err := fmt.Fprintf(w, `=== %s ===
Frames       : %d
References   : %d
Page Faults  : %d
Page Hits    : %d
Evictions    : %d
Fault Ratio  : %.2f%%
Hit Ratio    : %.2f%%
`,
		result.Policy.Description(),
		result.Capacity,
		len(result.References),
		result.Faults,
		result.Hits,
		result.Evictions(),
		result.FaultRatio()*100,
		result.HitRatio()*100,
	)
	return err
}

// writeStepLine prints one playback line.
func writeStepLine(w io.Writer, s sim.StepSnapshot, tally sim.Tally, last int) error {
	if s.Initial() {
		_, err := fmt.Fprintf(w, "step %d/%d  frames=%v\n", s.Index, last, cells(s))
		return err
	}
	status := "HIT"
	if s.IsFault {
		status = "FAULT"
	}
	line := fmt.Sprintf("step %d/%d  ref=%d  %-5s  frames=%v  hits=%d faults=%d",
		s.Index, last, s.Page, status, cells(s), tally.Hits, tally.Faults)
	if s.Evicted() {
		line += fmt.Sprintf("  replaced page %d in frame %d", *s.EvictedPage, s.EvictedFrame)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func cells(s sim.StepSnapshot) []string {
	out := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		out[i] = frameCell(f)
	}
	return out
}

// writeTrace lists every victim selection with its candidates.
func writeTrace(w io.Writer, et *trace.EvictionTrace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Time\tRequested\tVictim\tSlot\tCandidates (page:score)")
	for _, r := range et.Evictions {
		parts := make([]string, len(r.Candidates))
		for i, c := range r.Candidates {
			score := strconv.Itoa(c.Score)
			if c.NoFutureUse {
				score = "never"
			}
			parts[i] = fmt.Sprintf("%d:%s", c.Page, score)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", r.Time, r.Page, r.VictimPage, r.VictimSlot, strings.Join(parts, " "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := trace.Summarize(et)
	_, err := fmt.Fprintf(w, "Evictions: %d, unique victims: %d, never reused: %d\n",
		summary.TotalEvictions, summary.UniqueVictims, summary.NeverReusedVictims)
	return err
}

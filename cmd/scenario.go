package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/refstring"
	"github.com/inference-sim/pagesim/sim/workload"
)

// ScenarioFile represents the full scenario YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	MaxFrames *int       `yaml:"max_frames"` // nil means use --max-frames; 0 disables the limit
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one reference string run against one or more policies.
// Exactly one of References and Workload must be set.
type Scenario struct {
	Name       string         `yaml:"name"`
	References string         `yaml:"references"`
	Workload   *workload.Spec `yaml:"workload,omitempty"`
	Frames     int            `yaml:"frames"`
	Policies   []string       `yaml:"policies"` // empty means every policy
}

// ResolvedScenario is a Scenario with its text fields parsed.
type ResolvedScenario struct {
	References []int
	Frames     int
	Policies   []sim.Policy
}

// LoadScenarioFile reads and parses a YAML scenario file.
// Uses strict field checking so typos fail loudly.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	if file.MaxFrames != nil && *file.MaxFrames < 0 {
		return nil, fmt.Errorf("max_frames must be non-negative, got %d", *file.MaxFrames)
	}
	return &file, nil
}

// FrameLimit returns the frame bound for this file. An explicit --max-frames
// wins; otherwise max_frames from the file applies, falling back to flagValue.
func (f *ScenarioFile) FrameLimit(flagValue int, flagChanged bool) int {
	if flagChanged || f.MaxFrames == nil {
		return flagValue
	}
	return *f.MaxFrames
}

// Resolve parses references and policies and checks the frame count.
// maxFrames of 0 disables the upper bound.
func (s Scenario) Resolve(maxFrames int) (*ResolvedScenario, error) {
	var (
		refs []int
		err  error
	)
	switch {
	case s.Workload != nil && s.References != "":
		return nil, fmt.Errorf("scenario %q: references and workload are mutually exclusive", s.Name)
	case s.Workload != nil:
		refs, err = workload.Generate(*s.Workload)
	default:
		refs, err = refstring.Parse(s.References)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	if s.Frames < 1 {
		return nil, fmt.Errorf("scenario %q: %w: must be >=1 but %d was requested", s.Name, refstring.ErrInvalidCapacity, s.Frames)
	}
	if maxFrames > 0 && s.Frames > maxFrames {
		return nil, fmt.Errorf("scenario %q: %w: %d exceeds max frames %d", s.Name, refstring.ErrInvalidCapacity, s.Frames, maxFrames)
	}

	policies, err := parsePolicies(s.Policies)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return &ResolvedScenario{References: refs, Frames: s.Frames, Policies: policies}, nil
}

// parsePolicies maps names to policies; empty input selects all of them.
func parsePolicies(names []string) ([]sim.Policy, error) {
	if len(names) == 0 {
		return sim.AllPolicies(), nil
	}
	policies := make([]sim.Policy, 0, len(names))
	for _, name := range names {
		p, err := sim.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

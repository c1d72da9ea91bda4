// Package workload generates reproducible reference strings for experiments.
package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pattern names a reference-string shape.
type Pattern string

const (
	// Uniform draws every page independently from [0, Pages).
	Uniform Pattern = "uniform"
	// Locality draws from a sliding working set that occasionally jumps.
	Locality Pattern = "locality"
	// Loop cycles 0..WorkingSet-1, the worst case for LRU and FIFO when
	// WorkingSet exceeds the frame count by one.
	Loop Pattern = "loop"
)

// ValidPatterns is the set of recognized pattern names.
var ValidPatterns = map[Pattern]bool{Uniform: true, Locality: true, Loop: true}

// Spec describes one generated reference string.
type Spec struct {
	Pattern    Pattern `yaml:"pattern"`
	Length     int     `yaml:"length"`
	Pages      int     `yaml:"pages"`       // page identifiers are drawn from [0, Pages)
	WorkingSet int     `yaml:"working_set"` // locality window / loop length
	JumpProb   float64 `yaml:"jump_prob"`   // locality: chance per reference of moving the window
	Seed       int64   `yaml:"seed"`
}

// Validate checks the spec fields for the chosen pattern.
func (s Spec) Validate() error {
	if !ValidPatterns[s.Pattern] {
		return fmt.Errorf("unknown pattern %q", s.Pattern)
	}
	if s.Length < 0 {
		return fmt.Errorf("length must be non-negative, got %d", s.Length)
	}
	switch s.Pattern {
	case Uniform:
		if s.Pages < 1 {
			return fmt.Errorf("pages must be >= 1, got %d", s.Pages)
		}
	case Locality:
		if s.Pages < 1 {
			return fmt.Errorf("pages must be >= 1, got %d", s.Pages)
		}
		if s.WorkingSet < 1 || s.WorkingSet > s.Pages {
			return fmt.Errorf("working_set must be in [1, pages=%d], got %d", s.Pages, s.WorkingSet)
		}
		if s.JumpProb < 0 || s.JumpProb > 1 {
			return fmt.Errorf("jump_prob must be in [0, 1], got %f", s.JumpProb)
		}
	case Loop:
		if s.WorkingSet < 1 {
			return fmt.Errorf("working_set must be >= 1, got %d", s.WorkingSet)
		}
	}
	return nil
}

// Generate returns the reference string described by spec.
// Same spec, same output.
func Generate(spec Spec) ([]int, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(spec.Seed).ForSubsystem(string(spec.Pattern))
	refs := make([]int, spec.Length)

	switch spec.Pattern {
	case Uniform:
		for i := range refs {
			refs[i] = rng.Intn(spec.Pages)
		}
	case Locality:
		span := spec.Pages - spec.WorkingSet + 1
		base := rng.Intn(span)
		for i := range refs {
			if rng.Float64() < spec.JumpProb {
				base = rng.Intn(span)
			}
			refs[i] = base + rng.Intn(spec.WorkingSet)
		}
	case Loop:
		for i := range refs {
			refs[i] = i % spec.WorkingSet
		}
	}
	return refs, nil
}

// LoadSpec reads a Spec from a YAML file with strict field checking.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parsing workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

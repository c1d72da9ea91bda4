package sim

import "slices"

// Tally is a running hit/fault count.
type Tally struct {
	Hits   int `json:"hits" yaml:"hits"`
	Faults int `json:"faults" yaml:"faults"`
}

// Total returns the number of references counted.
func (t Tally) Total() int { return t.Hits + t.Faults }

// HitRatio returns hits / (hits + faults), or 0 when nothing was counted.
func (t Tally) HitRatio() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Hits) / float64(t.Total())
}

// FaultRatio returns faults / (hits + faults), or 0 when nothing was counted.
func (t Tally) FaultRatio() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Faults) / float64(t.Total())
}

// SimulationResult is the full output of one Simulate call.
type SimulationResult struct {
	Policy     Policy         `json:"policy" yaml:"policy"`
	Capacity   int            `json:"capacity" yaml:"capacity"`
	References []int          `json:"references" yaml:"references"`
	Steps      []StepSnapshot `json:"steps" yaml:"steps"`
	Hits       int            `json:"hits" yaml:"hits"`
	Faults     int            `json:"faults" yaml:"faults"`
}

// Tally returns the final hit and fault totals.
func (r *SimulationResult) Tally() Tally {
	return Tally{Hits: r.Hits, Faults: r.Faults}
}

// HitRatio returns the final hit ratio.
func (r *SimulationResult) HitRatio() float64 { return r.Tally().HitRatio() }

// FaultRatio returns the final fault ratio.
func (r *SimulationResult) FaultRatio() float64 { return r.Tally().FaultRatio() }

// Prefix returns the tally after the first n references.
// n is clamped to [0, len(References)].
func (r *SimulationResult) Prefix(n int) Tally {
	n = max(0, min(n, len(r.Steps)-1))
	var t Tally
	for _, s := range r.Steps[1 : n+1] {
		if s.IsFault {
			t.Faults++
		} else {
			t.Hits++
		}
	}
	return t
}

// Evictions returns the number of faults that displaced a resident page.
func (r *SimulationResult) Evictions() int {
	n := 0
	for _, s := range r.Steps {
		if s.Evicted() {
			n++
		}
	}
	return n
}

// Final returns the last snapshot.
func (r *SimulationResult) Final() StepSnapshot {
	return r.Steps[len(r.Steps)-1]
}

// Equal reports whether two results are identical step by step.
func (r *SimulationResult) Equal(other *SimulationResult) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Policy != other.Policy || r.Capacity != other.Capacity ||
		r.Hits != other.Hits || r.Faults != other.Faults ||
		!slices.Equal(r.References, other.References) ||
		len(r.Steps) != len(other.Steps) {
		return false
	}
	for i := range r.Steps {
		if !stepsEqual(r.Steps[i], other.Steps[i]) {
			return false
		}
	}
	return true
}

func stepsEqual(a, b StepSnapshot) bool {
	if a.Index != b.Index || a.Page != b.Page || a.IsFault != b.IsFault ||
		a.EvictedFrame != b.EvictedFrame || !intPtrEqual(a.EvictedPage, b.EvictedPage) ||
		len(a.Frames) != len(b.Frames) {
		return false
	}
	for i := range a.Frames {
		fa, fb := a.Frames[i], b.Frames[i]
		if fa.IsNew != fb.IsNew || fa.IsHit != fb.IsHit || !intPtrEqual(fa.Page, fb.Page) {
			return false
		}
	}
	return true
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

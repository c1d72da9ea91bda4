package sim

import (
	"slices"

	"github.com/inference-sim/pagesim/sim/trace"
)

// VictimSelector holds one policy's private bookkeeping for a single run.
// The step routine reports every load, hit and eviction to it and asks it
// for a victim only when no slot is empty.
type VictimSelector interface {
	// Loaded is called after page is placed in slot at reference index t.
	Loaded(slot, page, t int)
	// Referenced is called when page is hit at reference index t.
	Referenced(page, t int)
	// Evicted is called before page is removed from slot.
	Evicted(slot, page int)
	// Victim returns the slot to replace given the resident pages by slot.
	// Candidates are returned in slot order for tracing.
	Victim(frames []int, t int) (slot int, candidates []trace.CandidateScore)
}

// NewVictimSelector creates a selector by policy.
// refs is the full reference sequence; only Optimal reads it.
func NewVictimSelector(policy Policy, refs []int) (VictimSelector, error) {
	if !ValidPolicies[policy] {
		return nil, policyError(string(policy))
	}
	switch policy {
	case FIFO:
		return newOldestArrival(), nil
	case LRU:
		return newLeastRecentUse(), nil
	case Optimal:
		return &farthestFutureUse{refs: refs}, nil
	default:
		return nil, policyError(string(policy))
	}
}

// oldestArrival evicts the page at the head of the arrival queue.
type oldestArrival struct {
	queue    []int
	loadedAt map[int]int
}

func newOldestArrival() *oldestArrival {
	return &oldestArrival{loadedAt: make(map[int]int)}
}

func (o *oldestArrival) Loaded(_, page, t int) {
	o.queue = append(o.queue, page)
	o.loadedAt[page] = t
}

// Hits do not change arrival order.
func (o *oldestArrival) Referenced(int, int) {}

func (o *oldestArrival) Evicted(_, page int) {
	if i := slices.Index(o.queue, page); i >= 0 {
		o.queue = slices.Delete(o.queue, i, i+1)
	}
	delete(o.loadedAt, page)
}

func (o *oldestArrival) Victim(frames []int, _ int) (int, []trace.CandidateScore) {
	candidates := make([]trace.CandidateScore, len(frames))
	for slot, page := range frames {
		candidates[slot] = trace.CandidateScore{Slot: slot, Page: page, Score: o.loadedAt[page]}
	}
	return slices.Index(frames, o.queue[0]), candidates
}

// leastRecentUse evicts the page with the smallest last-use timestamp,
// lowest slot first on ties.
type leastRecentUse struct {
	lastUsed map[int]int
}

func newLeastRecentUse() *leastRecentUse {
	return &leastRecentUse{lastUsed: make(map[int]int)}
}

func (l *leastRecentUse) Loaded(_, page, t int)  { l.lastUsed[page] = t }
func (l *leastRecentUse) Referenced(page, t int) { l.lastUsed[page] = t }
func (l *leastRecentUse) Evicted(_, page int)    { delete(l.lastUsed, page) }

func (l *leastRecentUse) Victim(frames []int, _ int) (int, []trace.CandidateScore) {
	candidates := make([]trace.CandidateScore, len(frames))
	victim := 0
	for slot, page := range frames {
		used := l.lastUsed[page]
		candidates[slot] = trace.CandidateScore{Slot: slot, Page: page, Score: used}
		if used < candidates[victim].Score {
			victim = slot
		}
	}
	return victim, candidates
}

// farthestFutureUse evicts the page whose next reference after t is latest.
// A page never referenced again beats any finite distance; lowest slot first on ties.
// It keeps no state between faults.
type farthestFutureUse struct {
	refs []int
}

func (*farthestFutureUse) Loaded(int, int, int) {}
func (*farthestFutureUse) Referenced(int, int)  {}
func (*farthestFutureUse) Evicted(int, int)     {}

func (f *farthestFutureUse) Victim(frames []int, t int) (int, []trace.CandidateScore) {
	candidates := make([]trace.CandidateScore, len(frames))
	for slot, page := range frames {
		candidates[slot] = f.nextUse(slot, page, t)
	}
	victim := 0
	for slot, c := range candidates {
		if farther(c, candidates[victim]) {
			victim = slot
		}
	}
	return victim, candidates
}

func (f *farthestFutureUse) nextUse(slot, page, t int) trace.CandidateScore {
	c := trace.CandidateScore{Slot: slot, Page: page}
	if i := slices.Index(f.refs[t+1:], page); i >= 0 {
		c.Score = t + 1 + i
	} else {
		c.NoFutureUse = true
	}
	return c
}

// farther reports whether a is strictly farther in the future than b.
func farther(a, b trace.CandidateScore) bool {
	switch {
	case a.NoFutureUse:
		return !b.NoFutureUse
	case b.NoFutureUse:
		return false
	default:
		return a.Score > b.Score
	}
}

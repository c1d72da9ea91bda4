package sim

import (
	"slices"

	"github.com/inference-sim/pagesim/sim/trace"
)

// Simulate replays refs against capacity frames under policy and returns one
// snapshot per reference plus the initial empty snapshot.
// It fails with ErrInvalidConfiguration when capacity < 1 and with ErrUnknownPolicy
// for an unrecognized policy; no partial result is produced.
func Simulate(refs []int, capacity int, policy Policy) (*SimulationResult, error) {
	return SimulateTraced(refs, capacity, policy, nil)
}

// SimulateTraced is Simulate with every victim selection recorded into et.
// A nil or disabled trace records nothing.
func SimulateTraced(refs []int, capacity int, policy Policy, et *trace.EvictionTrace) (*SimulationResult, error) {
	if capacity < 1 {
		return nil, capacityError(capacity)
	}
	refs = slices.Clone(refs)
	if refs == nil {
		refs = []int{}
	}
	selector, err := NewVictimSelector(policy, refs)
	if err != nil {
		return nil, err
	}
	if et != nil {
		et.Policy = string(policy)
	}

	e := &engine{
		pool:     newFramePool(capacity),
		selector: selector,
		trace:    et,
	}
	result := &SimulationResult{
		Policy:     policy,
		Capacity:   capacity,
		References: refs,
		Steps:      make([]StepSnapshot, 0, len(refs)+1),
	}
	result.Steps = append(result.Steps, e.pool.snapshot(StepSnapshot{
		Index:        0,
		Page:         NoPage,
		EvictedFrame: NoFrame,
	}, NoFrame))

	for t, page := range refs {
		step := e.process(t, page)
		if step.IsFault {
			result.Faults++
		} else {
			result.Hits++
		}
		result.Steps = append(result.Steps, step)
	}
	return result, nil
}

// engine is the per-run state shared by every policy.
type engine struct {
	pool     *framePool
	selector VictimSelector
	trace    *trace.EvictionTrace
}

// process handles the reference at index t and returns its snapshot.
func (e *engine) process(t, page int) StepSnapshot {
	step := StepSnapshot{Index: t + 1, Page: page, EvictedFrame: NoFrame}

	if slot, ok := e.pool.slotOf(page); ok {
		e.selector.Referenced(page, t)
		return e.pool.snapshot(step, slot)
	}

	step.IsFault = true
	slot, ok := e.pool.firstEmpty()
	if !ok {
		var candidates []trace.CandidateScore
		slot, candidates = e.selector.Victim(e.pool.resident(), t)
		victim := e.pool.remove(slot)
		e.selector.Evicted(slot, victim)
		step.EvictedPage = &victim
		e.trace.RecordEviction(trace.EvictionRecord{
			Time:       t,
			Page:       page,
			VictimSlot: slot,
			VictimPage: victim,
			Candidates: candidates,
		})
	}
	e.pool.place(slot, page)
	e.selector.Loaded(slot, page, t)
	step.EvictedFrame = slot
	return e.pool.snapshot(step, NoFrame)
}

// framePool is the ordered set of frame slots. index mirrors slots so that
// a page is found in constant time and never occupies two slots.
type framePool struct {
	slots    []int
	occupied []bool
	index    map[int]int // page → slot
}

func newFramePool(capacity int) *framePool {
	return &framePool{
		slots:    make([]int, capacity),
		occupied: make([]bool, capacity),
		index:    make(map[int]int, capacity),
	}
}

func (p *framePool) slotOf(page int) (int, bool) {
	slot, ok := p.index[page]
	return slot, ok
}

func (p *framePool) firstEmpty() (int, bool) {
	if i := slices.Index(p.occupied, false); i >= 0 {
		return i, true
	}
	return 0, false
}

// resident returns the pages by slot. Only meaningful when the pool is full.
func (p *framePool) resident() []int {
	return slices.Clone(p.slots)
}

func (p *framePool) place(slot, page int) {
	p.slots[slot] = page
	p.occupied[slot] = true
	p.index[page] = slot
}

func (p *framePool) remove(slot int) int {
	page := p.slots[slot]
	delete(p.index, page)
	p.occupied[slot] = false
	return page
}

// snapshot fills step.Frames from the current pool. hitSlot marks the slot
// that satisfied a hit, or NoFrame.
func (p *framePool) snapshot(step StepSnapshot, hitSlot int) StepSnapshot {
	step.Frames = make([]FrameState, len(p.slots))
	for i := range p.slots {
		if !p.occupied[i] {
			continue
		}
		page := p.slots[i]
		step.Frames[i] = FrameState{
			Page:  &page,
			IsNew: step.IsFault && i == step.EvictedFrame,
			IsHit: i == hitSlot,
		}
	}
	return step
}

package sim

const (
	// NoPage is the Page value of the initial snapshot. Page identifiers are
	// opaque integers, so -1 may also be a real page; use Initial to tell them apart.
	NoPage = -1
	// NoFrame is the EvictedFrame value of snapshots that changed no slot.
	NoFrame = -1
)

// FrameState is the content of one frame slot after a step.
type FrameState struct {
	Page  *int `json:"page" yaml:"page"`                         // nil when the slot is empty
	IsNew bool `json:"is_new,omitempty" yaml:"is_new,omitempty"` // slot was filled by this step's fault
	IsHit bool `json:"is_hit,omitempty" yaml:"is_hit,omitempty"` // slot holds the page this step hit
}

// Empty reports whether no page occupies the slot.
func (f FrameState) Empty() bool { return f.Page == nil }

// PageOr returns the resident page, or def when the slot is empty.
func (f FrameState) PageOr(def int) int {
	if f.Page == nil {
		return def
	}
	return *f.Page
}

// StepSnapshot records the frame pool after processing one reference.
// Index 0 is the initial all-empty snapshot; Index i (i >= 1) follows reference i-1.
// Snapshots are never mutated after Simulate returns.
type StepSnapshot struct {
	Index        int          `json:"index" yaml:"index"`
	Page         int          `json:"page" yaml:"page"`
	IsFault      bool         `json:"is_fault" yaml:"is_fault"`
	EvictedFrame int          `json:"evicted_frame" yaml:"evicted_frame"`                     // slot filled or replaced; NoFrame on hits
	EvictedPage  *int         `json:"evicted_page,omitempty" yaml:"evicted_page,omitempty"` // page displaced, nil if the slot was empty
	Frames       []FrameState `json:"frames" yaml:"frames"`
}

// Initial reports whether s is the snapshot taken before any reference.
func (s StepSnapshot) Initial() bool { return s.Index == 0 }

// IsHit reports whether the reference was already resident.
func (s StepSnapshot) IsHit() bool { return !s.Initial() && !s.IsFault }

// Evicted reports whether a resident page was displaced by this step.
func (s StepSnapshot) Evicted() bool { return s.EvictedPage != nil }

// Pages returns the slot contents as plain integers, using empty for vacant slots.
func (s StepSnapshot) Pages(empty int) []int {
	pages := make([]int, len(s.Frames))
	for i, f := range s.Frames {
		pages[i] = f.PageOr(empty)
	}
	return pages
}

// Resident reports whether page occupies any slot.
func (s StepSnapshot) Resident(page int) bool {
	for _, f := range s.Frames {
		if f.Page != nil && *f.Page == page {
			return true
		}
	}
	return false
}

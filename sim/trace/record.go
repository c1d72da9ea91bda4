// Package trace provides eviction-decision recording for replacement policy analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// CandidateScore captures one resident page considered during victim selection.
// Score is policy-specific: load time for fifo, last-use time for lru,
// next-use time for optimal. NoFutureUse is only set by optimal.
type CandidateScore struct {
	Slot        int  `json:"slot" yaml:"slot"`
	Page        int  `json:"page" yaml:"page"`
	Score       int  `json:"score" yaml:"score"`
	NoFutureUse bool `json:"no_future_use,omitempty" yaml:"no_future_use,omitempty"`
}

// EvictionRecord captures a single victim selection.
type EvictionRecord struct {
	Time       int              `json:"time" yaml:"time"` // reference index that faulted
	Page       int              `json:"page" yaml:"page"` // page that was requested
	VictimSlot int              `json:"victim_slot" yaml:"victim_slot"`
	VictimPage int              `json:"victim_page" yaml:"victim_page"`
	Candidates []CandidateScore `json:"candidates" yaml:"candidates"` // in slot order
}

// Victim returns the candidate entry of the chosen slot.
func (r EvictionRecord) Victim() (CandidateScore, bool) {
	for _, c := range r.Candidates {
		if c.Slot == r.VictimSlot {
			return c, true
		}
	}
	return CandidateScore{}, false
}

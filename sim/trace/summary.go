package trace

// TraceSummary aggregates statistics from an EvictionTrace.
type TraceSummary struct {
	TotalEvictions     int
	UniqueVictims      int
	NeverReusedVictims int         // victims with no later reference (optimal only)
	VictimDistribution map[int]int // page → times evicted
	SlotDistribution   map[int]int // slot → times replaced
	MeanCandidates     float64
}

// Summarize computes aggregate statistics from an EvictionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *EvictionTrace) *TraceSummary {
	summary := &TraceSummary{
		VictimDistribution: make(map[int]int),
		SlotDistribution:   make(map[int]int),
	}
	if et == nil || len(et.Evictions) == 0 {
		return summary
	}

	candidates := 0
	for _, r := range et.Evictions {
		summary.VictimDistribution[r.VictimPage]++
		summary.SlotDistribution[r.VictimSlot]++
		candidates += len(r.Candidates)
		if v, ok := r.Victim(); ok && v.NoFutureUse {
			summary.NeverReusedVictims++
		}
	}
	summary.TotalEvictions = len(et.Evictions)
	summary.UniqueVictims = len(summary.VictimDistribution)
	summary.MeanCandidates = float64(candidates) / float64(len(et.Evictions))

	return summary
}

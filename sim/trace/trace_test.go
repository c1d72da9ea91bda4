package trace

import (
	"testing"
)

func TestEvictionTrace_RecordEviction_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for evictions
	et := NewEvictionTrace(TraceLevelEvictions)

	// WHEN an eviction record is recorded
	et.RecordEviction(EvictionRecord{
		Time:       3,
		Page:       2,
		VictimSlot: 0,
		VictimPage: 7,
		Candidates: []CandidateScore{{Slot: 0, Page: 7, Score: 0}, {Slot: 1, Page: 0, Score: 1}},
	})

	// THEN the trace contains one record with correct data
	if len(et.Evictions) != 1 {
		t.Fatalf("expected 1 eviction, got %d", len(et.Evictions))
	}
	if et.Evictions[0].VictimPage != 7 {
		t.Errorf("expected victim page 7, got %d", et.Evictions[0].VictimPage)
	}
}

func TestEvictionTrace_LevelNone_RecordsNothing(t *testing.T) {
	// GIVEN a trace with tracing disabled
	et := NewEvictionTrace(TraceLevelNone)

	// WHEN a record is offered
	et.RecordEviction(EvictionRecord{Time: 1, VictimPage: 4})

	// THEN it is dropped
	if len(et.Evictions) != 0 {
		t.Errorf("expected no evictions, got %d", len(et.Evictions))
	}
}

func TestEvictionTrace_NilReceiver_IsSafe(t *testing.T) {
	var et *EvictionTrace
	if et.Enabled() {
		t.Error("nil trace must not be enabled")
	}
	et.RecordEviction(EvictionRecord{Time: 1})
}

func TestEvictionTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	et := NewEvictionTrace(TraceLevelEvictions)

	et.RecordEviction(EvictionRecord{Time: 3, VictimPage: 7})
	et.RecordEviction(EvictionRecord{Time: 5, VictimPage: 1})

	if len(et.Evictions) != 2 {
		t.Fatalf("expected 2 evictions, got %d", len(et.Evictions))
	}
	if et.Evictions[0].Time != 3 || et.Evictions[1].Time != 5 {
		t.Error("eviction order not preserved")
	}
}

func TestEvictionRecord_Victim(t *testing.T) {
	r := EvictionRecord{
		VictimSlot: 1,
		Candidates: []CandidateScore{{Slot: 0, Page: 2, Score: 8}, {Slot: 1, Page: 1, Score: 13}},
	}
	v, ok := r.Victim()
	if !ok || v.Page != 1 {
		t.Errorf("expected victim candidate page 1, got %+v (ok=%v)", v, ok)
	}

	r.VictimSlot = 5
	if _, ok := r.Victim(); ok {
		t.Error("expected no candidate for unknown slot")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"evictions", true},
		{"", true},
		{"decisions", false},
		{"all", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}

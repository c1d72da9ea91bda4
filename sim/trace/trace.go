package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvictions captures every victim selection with its candidates.
	TraceLevelEvictions TraceLevel = "evictions"
)

var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelEvictions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// EvictionTrace collects eviction records during one simulation run.
// Not safe for concurrent use; each run owns its own trace.
type EvictionTrace struct {
	Level     TraceLevel       `json:"level" yaml:"level"`
	Policy    string           `json:"policy" yaml:"policy"`
	Evictions []EvictionRecord `json:"evictions" yaml:"evictions"`
}

// NewEvictionTrace creates an EvictionTrace ready for recording.
func NewEvictionTrace(level TraceLevel) *EvictionTrace {
	return &EvictionTrace{
		Level:     level,
		Evictions: make([]EvictionRecord, 0),
	}
}

// Enabled reports whether records should be collected.
// Safe on a nil receiver.
func (et *EvictionTrace) Enabled() bool {
	return et != nil && et.Level == TraceLevelEvictions
}

// RecordEviction appends an eviction record. Ignored unless Enabled.
func (et *EvictionTrace) RecordEviction(record EvictionRecord) {
	if !et.Enabled() {
		return
	}
	et.Evictions = append(et.Evictions, record)
}

package sim

import (
	"strings"
)

// Policy selects the page replacement strategy used by Simulate.
type Policy string

const (
	FIFO    Policy = "fifo"
	LRU     Policy = "lru"
	Optimal Policy = "optimal"
)

// ValidPolicies is the set of recognized policy names.
// Shared by ParsePolicy and NewVictimSelector to avoid duplication.
var ValidPolicies = map[Policy]bool{FIFO: true, LRU: true, Optimal: true}

// AllPolicies lists every policy in display order.
func AllPolicies() []Policy {
	return []Policy{FIFO, LRU, Optimal}
}

// IsValidPolicy returns true if name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[Policy(name)]
}

// ParsePolicy converts a case-insensitive policy name.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	if !ValidPolicies[p] {
		return "", policyError(name)
	}
	return p, nil
}

func (p Policy) String() string { return string(p) }

// DisplayName returns the long form shown to users.
func (p Policy) DisplayName() string {
	switch p {
	case FIFO:
		return "First-In-First-Out (FIFO)"
	case LRU:
		return "Least Recently Used (LRU)"
	case Optimal:
		return "Optimal Page Replacement"
	default:
		return string(p)
	}
}

// Description summarizes how the policy picks its victim.
func (p Policy) Description() string {
	switch p {
	case FIFO:
		return "First-In-First-Out (FIFO) replaces the oldest page in memory"
	case LRU:
		return "Least Recently Used (LRU) replaces the page that hasn't been used for the longest time"
	case Optimal:
		return "Optimal replaces the page that won't be used for the longest time in the future"
	default:
		return ""
	}
}

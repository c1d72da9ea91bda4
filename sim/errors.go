package sim

import "fmt"

type constError string

func (errStr constError) Error() string { return string(errStr) }

const (
	// ErrInvalidConfiguration is returned by Simulate when the frame capacity is below 1.
	ErrInvalidConfiguration = constError("invalid configuration")
	// ErrUnknownPolicy is returned for policy names outside ValidPolicies.
	ErrUnknownPolicy = constError("unknown policy")
)

func capacityError(capacity int) error {
	return fmt.Errorf(
		"%w: frame capacity must be >=1 but %d was requested",
		ErrInvalidConfiguration, capacity)
}

func policyError(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownPolicy, name)
}

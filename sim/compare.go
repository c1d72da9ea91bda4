package sim

import (
	"sync"
)

// SimulateAll runs Simulate once per policy concurrently on the same input.
// Each run owns its selector and result, so nothing is shared between goroutines.
// Results are returned in the order of policies. The first error (by policy order) wins.
func SimulateAll(refs []int, capacity int, policies []Policy) ([]*SimulationResult, error) {
	if capacity < 1 {
		return nil, capacityError(capacity)
	}
	results := make([]*SimulationResult, len(policies))
	errs := make([]error, len(policies))

	var wg sync.WaitGroup
	for i, policy := range policies {
		i, policy := i, policy
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Simulate(refs, capacity, policy)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

package sim

// SweepPoint is the outcome of one policy at one frame capacity.
type SweepPoint struct {
	Capacity int    `json:"capacity" yaml:"capacity"`
	Policy   Policy `json:"policy" yaml:"policy"`
	Tally
}

// Sweep simulates policy for every capacity in [1, maxCapacity].
func Sweep(refs []int, maxCapacity int, policy Policy) ([]SweepPoint, error) {
	if maxCapacity < 1 {
		return nil, capacityError(maxCapacity)
	}
	points := make([]SweepPoint, 0, maxCapacity)
	for c := 1; c <= maxCapacity; c++ {
		r, err := Simulate(refs, c, policy)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Capacity: c, Policy: policy, Tally: r.Tally()})
	}
	return points, nil
}

// BeladyAnomalies returns every capacity c in points for which c+1 frames
// faulted more than c frames. Points must be in ascending capacity order.
// FIFO may report anomalies; LRU and Optimal never do.
func BeladyAnomalies(points []SweepPoint) []int {
	var anomalies []int
	for i := 1; i < len(points); i++ {
		if points[i].Faults > points[i-1].Faults {
			anomalies = append(anomalies, points[i-1].Capacity)
		}
	}
	return anomalies
}

package domain

import "strings"

// PathSeparator joins stop names in a rendered route.
const PathSeparator = " => "

// Algorithm tags the engine that produced a Route.
type Algorithm string

const (
	AlgorithmDijkstra    Algorithm = "Dijkstra's Algorithm"
	AlgorithmAStar       Algorithm = "A* Search Algorithm"
	AlgorithmAStarMulti  Algorithm = "A* Multi-Path Search"
	AlgorithmGreedy      Algorithm = "Greedy Algorithm"
	AlgorithmDynamic     Algorithm = "Dynamic Programming"
	AlgorithmDirect      Algorithm = "Optimized Direct Route"
	AlgorithmAlternative Algorithm = "Optimized Alternative Route"
	AlgorithmLandmark    Algorithm = "Landmark-based Search"
	AlgorithmSameSpot    Algorithm = "Same Location"
)

// Segment is one leg of a route, keyed by the stop it arrives at.
type Segment struct {
	To       string
	Distance float64
}

// Represents a single walking route between two campus locations.
// Distance is always the sum of Segments and Minutes is derived from it;
// neither is chosen independently.
type Route struct {
	Stops     []string
	Segments  []Segment
	Distance  float64
	Minutes   float64
	Algorithm Algorithm
}

// Path renders the stop sequence as a single display string.
func (r *Route) Path() string {
	return strings.Join(r.Stops, PathSeparator)
}

// SegmentTotal sums the per-leg distances.
func (r *Route) SegmentTotal() float64 {
	total := 0.0
	for _, s := range r.Segments {
		total += s.Distance
	}
	return total
}

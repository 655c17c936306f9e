package services

import (
	"campus-route-service/internal/domain"
	"errors"
	"fmt"
)

// NearestNeighborRoute walks toward end one greedy step at a time.
//
// Each step moves to the unvisited location minimising
// d(current, i) + GreedyRemainingWeight * d(i, end); the destination itself
// competes with score d(current, end). After GreedyMaxHops steps a direct
// final hop is forced. It does not attempt global optimisation.
func NearestNeighborRoute(g *domain.CampusGraph, start, end int, t Tuning) (Path, error) {
	if !inRange(g, start) || !inRange(g, end) {
		return Path{}, fmt.Errorf("nearest neighbor route: %w", domain.ErrUnknownLocation)
	}
	if start == end {
		return Path{}, errors.New("nearest neighbor route: start and end must differ")
	}

	visited := make([]bool, g.Len())
	visited[start] = true

	stops := []int{start}
	segments := []float64{}
	current := start

	for hops := 0; current != end && hops < t.GreedyMaxHops; hops++ {
		next, leg := nextGreedyStop(g, current, end, visited, t.GreedyRemainingWeight)
		if next < 0 {
			break
		}

		visited[next] = true
		stops = append(stops, next)
		segments = append(segments, leg)
		current = next
	}

	// Fall back to a direct final hop when stepping stalls or runs out.
	if current != end {
		d, ok := g.Edge(current, end)
		if !ok {
			return Path{}, fmt.Errorf(
				"nearest neighbor route: no final hop from %q to %q: %w",
				g.Name(current), g.Name(end), domain.ErrNoPath,
			)
		}
		stops = append(stops, end)
		segments = append(segments, d)
	}

	return Path{Stops: stops, Segments: segments}, nil
}

func nextGreedyStop(g *domain.CampusGraph, current, end int, visited []bool, remainingWeight float64) (int, float64) {
	best, bestLeg, bestScore := -1, 0.0, 0.0

	for i := 0; i < g.Len(); i++ {
		if visited[i] {
			continue
		}
		from, ok := g.Edge(current, i)
		if !ok {
			continue
		}

		score := from
		if i != end {
			to, ok := g.Edge(i, end)
			if !ok {
				continue
			}
			score += remainingWeight * to
		}

		// Strict comparison keeps the earliest location on equal scores.
		if best < 0 || score < bestScore {
			best, bestLeg, bestScore = i, from, score
		}
	}

	return best, bestLeg
}

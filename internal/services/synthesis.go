package services

import (
	"campus-route-service/internal/domain"
)

// DirectRoute stitches a short route through at most one intermediate.
//
// Below DirectThreshold the direct hop is returned unchanged. Otherwise the
// intermediate minimising start->i + i->end is used, with the direct hop
// as the fallback when no intermediate has two valid legs.
func DirectRoute(g *domain.CampusGraph, start, end int, direct float64, t Tuning) Path {
	if direct < t.DirectThreshold {
		return directHop(g, start, end, direct)
	}

	best, bestTotal := -1, 0.0
	for i := 0; i < g.Len(); i++ {
		if i == start || i == end {
			continue
		}
		a, ok := g.Edge(start, i)
		if !ok {
			continue
		}
		b, ok := g.Edge(i, end)
		if !ok {
			continue
		}
		if best < 0 || a+b < bestTotal {
			best, bestTotal = i, a+b
		}
	}

	if best < 0 {
		return directHop(g, start, end, direct)
	}

	a, _ := g.Edge(start, best)
	b, _ := g.Edge(best, end)
	return Path{Stops: []int{start, best, end}, Segments: []float64{a, b}}
}

// AlternativeRoute builds a deliberately different few-hop route.
//
// Variant 1 allows one intermediate and weights the leg from the current
// stop by LegWeight; any other variant allows two intermediates and weights
// the remaining leg instead. Candidates whose remaining distance is not
// below DetourFactor times the direct distance are rejected. The last hop
// always goes to end, over the direct edge when one exists.
func AlternativeRoute(g *domain.CampusGraph, start, end int, direct float64, variant int, t Tuning) Path {
	maxHops := 3
	if variant == 1 {
		maxHops = 2
	}

	used := map[int]bool{start: true}
	stops := []int{start}
	segments := []float64{}
	cur := start

	for hop := 0; hop < maxHops-1; hop++ {
		next, leg := -1, 0.0
		bestScore := 0.0

		for i := 0; i < g.Len(); i++ {
			if used[i] || i == end {
				continue
			}
			from, ok := g.Edge(cur, i)
			if !ok {
				continue
			}
			to, ok := g.Edge(i, end)
			if !ok || to >= direct*t.DetourFactor {
				continue
			}

			score := from + to*t.LegWeight
			if variant == 1 {
				score = from*t.LegWeight + to
			}
			if next < 0 || score < bestScore {
				next, leg, bestScore = i, from, score
			}
		}

		if next < 0 {
			break
		}
		used[next] = true
		stops = append(stops, next)
		segments = append(segments, leg)
		cur = next
	}

	last, ok := g.Edge(cur, end)
	if !ok {
		last = direct
	}
	return Path{Stops: append(stops, end), Segments: append(segments, last)}
}

func directHop(g *domain.CampusGraph, start, end int, direct float64) Path {
	d, ok := g.Edge(start, end)
	if !ok {
		d = direct
	}
	return Path{Stops: []int{start, end}, Segments: []float64{d}}
}

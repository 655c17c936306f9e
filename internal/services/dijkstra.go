package services

import (
	"campus-route-service/internal/domain"
	"fmt"
	"math"
)

// ShortestPath runs uniform-cost search from start to end.
//
// Only edges with a positive parsed weight are traversed. Equal tentative
// distances are settled in discovery order, so the result is deterministic
// for a fixed matrix. Segment distances are re-read from the matrix
// cells rather than taken from the relaxed labels.
func ShortestPath(g *domain.CampusGraph, start, end int) (Path, error) {
	if !inRange(g, start) || !inRange(g, end) {
		return Path{}, fmt.Errorf("shortest path: %w", domain.ErrUnknownLocation)
	}

	dist, prev := dijkstra(g, start, end)
	if math.IsInf(dist[end], 1) {
		return Path{}, fmt.Errorf("shortest path: %q -> %q: %w", g.Name(start), g.Name(end), domain.ErrNoPath)
	}

	return tracePath(g, prev, start, end), nil
}

// ShortestDistances returns the shortest distance from source to every
// reachable location, keyed by canonical name. Unreachable locations are
// omitted; the source itself maps to zero.
func ShortestDistances(g *domain.CampusGraph, source int) (map[string]float64, error) {
	if !inRange(g, source) {
		return nil, fmt.Errorf("shortest distances: %w", domain.ErrUnknownLocation)
	}

	dist, _ := dijkstra(g, source, -1)
	out := make(map[string]float64, len(dist))
	for v, d := range dist {
		if !math.IsInf(d, 1) {
			out[g.Name(v)] = d
		}
	}
	return out, nil
}

// dijkstra settles vertices until target is popped (or the queue drains
// when target is -1).
func dijkstra(g *domain.CampusGraph, source, target int) ([]float64, []int) {
	n := g.Len()
	dist := make([]float64, n)
	prev := make([]int, n)
	settled := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[source] = 0

	q := &minQueue{}
	q.push(source, 0, 0)

	for !q.empty() {
		it := q.pop()
		u := it.vertex
		if settled[u] {
			continue
		}
		settled[u] = true
		if u == target {
			break
		}

		for v := 0; v < n; v++ {
			if settled[v] {
				continue
			}
			w, ok := g.Edge(u, v)
			if !ok {
				continue
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				q.push(v, nd, 0)
			}
		}
	}

	return dist, prev
}

// tracePath walks predecessor links back from end and reverses them.
func tracePath(g *domain.CampusGraph, prev []int, start, end int) Path {
	stops := []int{end}
	for v := end; v != start; {
		v = prev[v]
		stops = append(stops, v)
	}
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}

	segments := make([]float64, 0, len(stops)-1)
	for i := 1; i < len(stops); i++ {
		segments = append(segments, g.SegmentDistance(stops[i-1], stops[i]))
	}
	return Path{Stops: stops, Segments: segments}
}

func inRange(g *domain.CampusGraph, v int) bool {
	return g != nil && v >= 0 && v < g.Len()
}

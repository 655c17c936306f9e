package services

import (
	"campus-route-service/internal/domain"
	"fmt"
	"math"
)

// AllPairs is the precomputed shortest-distance table of a CampusGraph.
// It is immutable once built and shared by every query of a planner.
type AllPairs struct {
	graph *domain.CampusGraph
	dist  [][]float64
}

// NewAllPairs runs Floyd-Warshall over intermediates k, rows i, columns j.
// Absent edges start at +Inf and the diagonal at zero.
func NewAllPairs(g *domain.CampusGraph) (*AllPairs, error) {
	if g == nil || g.Len() == 0 {
		return nil, fmt.Errorf("all pairs: %w", domain.ErrEmptyMatrix)
	}

	n := g.Len()
	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dist[i][j] = g.Weight(i, j)
		}
	}

	for k := 0; k < n; k++ {
		dk := dist[k]
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			di := dist[i]
			for j := 0; j < n; j++ {
				if alt := dik + dk[j]; alt < di[j] {
					di[j] = alt
				}
			}
		}
	}

	return &AllPairs{graph: g, dist: dist}, nil
}

// Between returns the precomputed distance by index (+Inf when unreachable).
func (a *AllPairs) Between(i, j int) float64 {
	return a.dist[i][j]
}

// ShortestDistance resolves both names leniently. ok is false when either
// name is unknown or no path exists.
func (a *AllPairs) ShortestDistance(from, to string) (float64, bool) {
	i, ok := a.graph.Resolve(from)
	if !ok {
		return 0, false
	}
	j, ok := a.graph.Resolve(to)
	if !ok {
		return 0, false
	}
	d := a.dist[i][j]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// WithinDistance lists, in matrix order, the locations reachable from
// source within radius. The source itself is never included.
func (a *AllPairs) WithinDistance(source string, radius float64) ([]string, error) {
	s, ok := a.graph.Resolve(source)
	if !ok {
		return nil, fmt.Errorf("within distance %q: %w", source, domain.ErrUnknownLocation)
	}

	out := []string{}
	for j, d := range a.dist[s] {
		if j == s || math.IsInf(d, 1) {
			continue
		}
		if d <= radius {
			out = append(out, a.graph.Name(j))
		}
	}
	return out, nil
}

// HasPath reports a finite, strictly positive shortest distance.
func (a *AllPairs) HasPath(from, to string) bool {
	d, ok := a.ShortestDistance(from, to)
	return ok && d > 0
}

package domain

import (
	"fmt"
	"math"
	"strings"
)

// CampusGraph is the immutable, indexed view of a DistanceMatrix that every
// planning engine reads. It is safe for concurrent use once built.
type CampusGraph struct {
	raw           *DistanceMatrix
	names         []string
	display       []string
	index         map[string]int
	weights       [][]float64
	segmentFloor  float64
	displaySuffix string
}

// NewCampusGraph parses every cell once. Unparseable cells become absent
// edges (+Inf); the diagonal is always zero.
func NewCampusGraph(m *DistanceMatrix, displaySuffix string, segmentFallback float64) (*CampusGraph, error) {
	n := m.Size()
	if n == 0 {
		return nil, fmt.Errorf("new campus graph: %w", ErrEmptyMatrix)
	}

	g := &CampusGraph{
		raw:           m,
		names:         make([]string, n),
		display:       make([]string, n),
		index:         make(map[string]int, n),
		weights:       make([][]float64, n),
		segmentFloor:  segmentFallback,
		displaySuffix: displaySuffix,
	}

	for i := 0; i < n; i++ {
		name := m.Name(i)
		g.names[i] = name
		g.display[i] = trimDisplay(name, displaySuffix)
		// Duplicate headers resolve to their first column.
		if _, ok := g.index[name]; !ok {
			g.index[name] = i
		}
	}

	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			row[j] = math.Inf(1)
			if s, ok := m.Cell(i, j); ok {
				if v, ok := ParseDistance(s); ok {
					row[j] = v
				}
			}
		}
		g.weights[i] = row
	}

	return g, nil
}

func trimDisplay(name, suffix string) string {
	if suffix == "" {
		return name
	}
	return strings.TrimSpace(strings.ReplaceAll(name, suffix, ""))
}

func (g *CampusGraph) Len() int { return len(g.names) }

func (g *CampusGraph) Name(i int) string { return g.names[i] }

func (g *CampusGraph) DisplayName(i int) string { return g.display[i] }

// Names returns the canonical names in matrix order.
func (g *CampusGraph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Index looks up a canonical name exactly.
func (g *CampusGraph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Resolve maps a user query onto a location: exact canonical match first,
// otherwise the first name in matrix order that contains the query.
func (g *CampusGraph) Resolve(query string) (int, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return -1, false
	}
	if i, ok := g.index[q]; ok {
		return i, true
	}
	for i, name := range g.names {
		if strings.Contains(name, q) {
			return i, true
		}
	}
	return -1, false
}

// Edge returns the direct edge weight from i to j when one exists.
func (g *CampusGraph) Edge(i, j int) (float64, bool) {
	if i == j {
		return 0, false
	}
	w := g.weights[i][j]
	if math.IsInf(w, 1) {
		return 0, false
	}
	return w, true
}

// Weight is the dense weight: 0 on the diagonal, +Inf where no edge exists.
func (g *CampusGraph) Weight(i, j int) float64 {
	return g.weights[i][j]
}

// SegmentDistance re-reads the matrix cell for display purposes and
// substitutes the minimal fallback when the text does not parse.
func (g *CampusGraph) SegmentDistance(i, j int) float64 {
	if s, ok := g.raw.Cell(i, j); ok {
		if v, ok := ParseDistance(s); ok {
			return v
		}
	}
	return g.segmentFloor
}

package services

import (
	"campus-route-service/internal/domain"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type edge struct {
	from, to string
	km       float64
}

// symmetricMatrix builds a matrix over names with both directions of every
// edge filled in. Pairs without an edge stay empty.
func symmetricMatrix(names []string, edges []edge) *domain.DistanceMatrix {
	pos := make(map[string]int, len(names))
	cells := make([][]string, len(names)+1)
	cells[0] = append([]string{""}, names...)
	for i, n := range names {
		pos[n] = i + 1
		row := make([]string, len(names)+1)
		row[0] = n
		row[i+1] = "0"
		cells[i+1] = row
	}
	for _, e := range edges {
		v := strconv.FormatFloat(e.km, 'f', -1, 64)
		cells[pos[e.from]][pos[e.to]] = v
		cells[pos[e.to]][pos[e.from]] = v
	}
	return domain.NewDistanceMatrix(cells)
}

func newGraph(t *testing.T, names []string, edges []edge) *domain.CampusGraph {
	t.Helper()
	g, err := domain.NewCampusGraph(symmetricMatrix(names, edges), "", DefaultTuning().SegmentFallback)
	require.NoError(t, err)
	return g
}

// lineGraph is A - B - C with a long direct A - C edge.
func lineGraph(t *testing.T) *domain.CampusGraph {
	return newGraph(t, []string{"A", "B", "C"}, []edge{
		{"A", "B", 1},
		{"B", "C", 1},
		{"A", "C", 5},
	})
}

// campusGraph has two ways from the Main Gate to the Great Hall, one of
// them past the library.
func campusGraph(t *testing.T) *domain.CampusGraph {
	return newGraph(t, campusNames, campusEdges)
}

var campusNames = []string{"Main Gate", "Night Market", "Balme Library", "Great Hall"}

var campusEdges = []edge{
	{"Main Gate", "Night Market", 1},
	{"Night Market", "Great Hall", 1},
	{"Main Gate", "Balme Library", 1.5},
	{"Balme Library", "Great Hall", 1},
	{"Main Gate", "Great Hall", 3},
}

func stopNames(g *domain.CampusGraph, p Path) []string {
	out := make([]string, len(p.Stops))
	for i, v := range p.Stops {
		out[i] = g.Name(v)
	}
	return out
}

func index(t *testing.T, g *domain.CampusGraph, name string) int {
	t.Helper()
	i, ok := g.Index(name)
	require.True(t, ok, fmt.Sprintf("unknown location %q", name))
	return i
}

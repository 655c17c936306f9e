package services

import (
	"campus-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighborRoute(t *testing.T) {
	g := campusGraph(t)
	s, e := index(t, g, "Main Gate"), index(t, g, "Great Hall")

	p, err := NearestNeighborRoute(g, s, e, DefaultTuning())
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Gate", "Night Market", "Great Hall"}, stopNames(g, p))
	assert.Equal(t, []float64{1, 1}, p.Segments)
}

func TestNearestNeighborRouteForcesFinalHop(t *testing.T) {
	g := lineGraph(t)
	tu := DefaultTuning()
	tu.GreedyMaxHops = 0

	p, err := NearestNeighborRoute(g, 0, 2, tu)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, stopNames(g, p))
	assert.Equal(t, []float64{5}, p.Segments)
}

func TestNearestNeighborRouteErrors(t *testing.T) {
	tu := DefaultTuning()

	g := newGraph(t, []string{"A", "B", "C"}, []edge{{"A", "B", 1}})
	_, err := NearestNeighborRoute(g, 0, 2, tu)
	require.ErrorIs(t, err, domain.ErrNoPath)

	_, err = NearestNeighborRoute(g, 0, 0, tu)
	require.Error(t, err)

	_, err = NearestNeighborRoute(g, -1, 2, tu)
	require.ErrorIs(t, err, domain.ErrUnknownLocation)
}

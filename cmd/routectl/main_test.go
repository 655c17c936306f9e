package main

import (
	"bytes"
	"campus-route-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResultsSummaryOrder(t *testing.T) {
	res := domain.RouteResults{
		Routes: []*domain.Route{
			{Stops: []string{"A", "B"}, Distance: 1, Minutes: 12, Algorithm: domain.AlgorithmLandmark},
			{Stops: []string{"A", "C", "B"}, Distance: 2, Minutes: 24, Algorithm: domain.AlgorithmDijkstra},
			{Stops: []string{"A", "D", "B"}, Distance: 3, Minutes: 36, Algorithm: domain.AlgorithmGreedy},
		},
		TotalFound: 3,
		Summary: map[domain.Algorithm]int{
			domain.AlgorithmLandmark: 1,
			domain.AlgorithmGreedy:   1,
			domain.AlgorithmDijkstra: 1,
		},
	}

	var first string
	for i := 0; i < 20; i++ {
		var buf bytes.Buffer
		printResults(&buf, res)
		if i == 0 {
			first = buf.String()
			continue
		}
		require.Equal(t, first, buf.String(), "output is stable across runs")
	}

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{
		"Dijkstra's Algorithm: 1",
		"Greedy Algorithm: 1",
		"Landmark-based Search: 1",
	}, lines[len(lines)-3:])
}

func TestPrintResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, domain.RouteResults{})
	assert.Equal(t, "No routes found.\n", buf.String())
}

package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyMatrix     = errors.New("distance matrix has no locations")
	ErrUnknownLocation = errors.New("location not found")
	ErrNoPath          = errors.New("no path between locations")
)

// DistanceMatrix is the raw, self-describing distance table.
//
// Row 0 holds the location names: Cells[0][i] names location i for i >= 1.
// Cells[i][j] is the distance from location i to location j as text.
// Cells[0][0] is a corner label and never a location. Rows may be ragged;
// a missing cell means there is no direct edge.
type DistanceMatrix struct {
	Cells [][]string
}

func NewDistanceMatrix(cells [][]string) *DistanceMatrix {
	return &DistanceMatrix{Cells: cells}
}

// Size returns the number of locations named in the header row.
func (m *DistanceMatrix) Size() int {
	if m == nil || len(m.Cells) == 0 || len(m.Cells[0]) < 2 {
		return 0
	}
	return len(m.Cells[0]) - 1
}

// Name returns the header name of location i (0-based).
func (m *DistanceMatrix) Name(i int) string {
	return strings.TrimSpace(m.Cells[0][i+1])
}

// Cell returns the raw text from location i to location j (both 0-based).
func (m *DistanceMatrix) Cell(i, j int) (string, bool) {
	r, c := i+1, j+1
	if r >= len(m.Cells) || c >= len(m.Cells[r]) {
		return "", false
	}
	return m.Cells[r][c], true
}

// ParseDistance reports whether s is a usable edge weight: a finite number > 0.
func ParseDistance(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

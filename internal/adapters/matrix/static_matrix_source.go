package matrix

import (
	"campus-route-service/internal/domain"
	"context"
	"strconv"
)

type StaticPair struct {
	From, To string
	Distance float64
}

// StaticMatrixSource serves an in-memory matrix built from named pairs.
// Pairs are directed; add both directions for a symmetric campus.
type StaticMatrixSource struct {
	names []string
	pairs []StaticPair
	// Err, when set, is returned by LoadMatrix instead of a matrix.
	Err error
}

func NewStaticMatrixSource(names []string, pairs []StaticPair) *StaticMatrixSource {
	return &StaticMatrixSource{names: names, pairs: pairs}
}

// Symmetric expands each pair into both directions.
func Symmetric(pairs []StaticPair) []StaticPair {
	out := make([]StaticPair, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p, StaticPair{From: p.To, To: p.From, Distance: p.Distance})
	}
	return out
}

func (s *StaticMatrixSource) LoadMatrix(ctx context.Context) (*domain.DistanceMatrix, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Matrix(), nil
}

// Matrix renders the pairs as text cells; unlisted pairs stay empty.
func (s *StaticMatrixSource) Matrix() *domain.DistanceMatrix {
	pos := make(map[string]int, len(s.names))
	cells := make([][]string, len(s.names)+1)
	cells[0] = append([]string{""}, s.names...)
	for i, name := range s.names {
		pos[name] = i + 1
		row := make([]string, len(s.names)+1)
		row[0] = name
		row[i+1] = "0"
		cells[i+1] = row
	}

	for _, p := range s.pairs {
		r, ok := pos[p.From]
		if !ok {
			continue
		}
		c, ok := pos[p.To]
		if !ok {
			continue
		}
		cells[r][c] = strconv.FormatFloat(p.Distance, 'f', -1, 64)
	}

	return domain.NewDistanceMatrix(cells)
}

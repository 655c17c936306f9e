package matrix

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVMatrixSource reads a self-describing distance matrix from a CSV file:
// the first row names every location, each following row holds the
// distances from one location.
type CSVMatrixSource struct {
	Path string
}

func NewCSVMatrixSource(path string) *CSVMatrixSource {
	return &CSVMatrixSource{Path: path}
}

func (s *CSVMatrixSource) LoadMatrix(ctx context.Context) (_ *domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "matrix.csv.Load")(&err)

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load csv matrix: open %q: %w", s.Path, err)
	}
	defer f.Close()

	m, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load csv matrix %q: %w", s.Path, err)
	}
	return m, nil
}

// ReadCSV parses matrix rows of any width. Cells are kept as text; bad
// numbers are the engine's concern, not the reader's.
func ReadCSV(r io.Reader) (*domain.DistanceMatrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var cells [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		cells = append(cells, rec)
	}

	if len(cells) > 0 && len(cells[0]) > 0 {
		cells[0][0] = strings.TrimPrefix(cells[0][0], "\ufeff")
	}

	m := domain.NewDistanceMatrix(cells)
	if m.Size() == 0 {
		return nil, domain.ErrEmptyMatrix
	}
	return m, nil
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

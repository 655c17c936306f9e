package matrix

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXMatrixSource reads the matrix from one worksheet of a workbook laid
// out exactly like the CSV form. An empty Sheet selects the first sheet.
type XLSXMatrixSource struct {
	Path  string
	Sheet string
}

func NewXLSXMatrixSource(path, sheet string) *XLSXMatrixSource {
	return &XLSXMatrixSource{Path: path, Sheet: sheet}
}

func (s *XLSXMatrixSource) LoadMatrix(ctx context.Context) (_ *domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "matrix.xlsx.Load")(&err)

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load xlsx matrix: open %q: %w", s.Path, err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("load xlsx matrix: read sheet %q: %w", sheet, err)
	}

	// GetRows drops trailing empty cells, so rows come back ragged.
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		cells = append(cells, row)
	}

	m := domain.NewDistanceMatrix(cells)
	if m.Size() == 0 {
		return nil, fmt.Errorf("load xlsx matrix %q: %w", s.Path, domain.ErrEmptyMatrix)
	}
	return m, nil
}

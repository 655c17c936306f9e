package repositories

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the MatrixSource port.
type SQLMatrixRepository struct{ DB *sql.DB }

func NewSQLMatrixRepository(db *sql.DB) *SQLMatrixRepository {
	return &SQLMatrixRepository{DB: db}
}

// LoadMatrix rebuilds the self-describing matrix from the locations and
// distances tables. Pairs with no stored row become empty cells.
func (s *SQLMatrixRepository) LoadMatrix(ctx context.Context) (_ *domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "matrix.sql.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("sql matrix repository: DB is nil")
	}

	names, err := s.listLocations(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("load matrix: %w", domain.ErrEmptyMatrix)
	}

	n := len(names)
	cells := make([][]string, n+1)
	cells[0] = append([]string{""}, names...)
	for i := 1; i <= n; i++ {
		cells[i] = make([]string, n+1)
		cells[i][0] = names[i-1]
	}

	query := `
	SELECT
		origin_pos,
		dest_pos,
		distance
	FROM distances;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load matrix: query distances table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var from, to int
		var cell string
		if err := rows.Scan(&from, &to, &cell); err != nil {
			return nil, fmt.Errorf("load matrix: scan distance row: %w", err)
		}
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, fmt.Errorf("load matrix: distance %d->%d outside %d locations", from, to, n)
		}
		cells[from+1][to+1] = cell
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load matrix: row iteration: %w", err)
	}

	return domain.NewDistanceMatrix(cells), nil
}

func (s *SQLMatrixRepository) listLocations(ctx context.Context) ([]string, error) {
	query := `
	SELECT
		idx,
		name
	FROM locations
	ORDER BY idx;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 64)
	for rows.Next() {
		var pos int
		var name string
		if err := rows.Scan(&pos, &name); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		if pos != len(names) {
			return nil, fmt.Errorf("list locations: positions not contiguous at %d", pos)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return names, nil
}

package repositories

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/db"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// InitSchema creates the matrix and cache tables. Column types are chosen to
// work unchanged on Postgres, MySQL and SQLite.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		idx INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		origin_pos INTEGER NOT NULL,
		dest_pos INTEGER NOT NULL,
		distance VARCHAR(64) NOT NULL,
		PRIMARY KEY (origin_pos, dest_pos)
	);
	`

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
		origin VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	statements := []string{
		createLocationsQuery,
		createDistancesQuery,
		createDistanceCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedMatrix replaces the stored matrix with m. Empty cells are not stored;
// every other cell is kept verbatim so unparseable text survives a round trip.
func SeedMatrix(ctx context.Context, conn *sql.DB, dialect db.Dialect, m *domain.DistanceMatrix) error {
	n := m.Size()
	if n == 0 {
		return fmt.Errorf("seed matrix: %w", domain.ErrEmptyMatrix)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed matrix: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"distances", "locations"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed matrix: clear %s: %w", table, err)
		}
	}

	locStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO locations (idx, name) VALUES (%s)", dialect.Placeholders(1, 2),
	))
	if err != nil {
		return fmt.Errorf("seed matrix: prepare locations insert: %w", err)
	}
	defer locStmt.Close()

	for i := 0; i < n; i++ {
		if _, err := locStmt.ExecContext(ctx, i, m.Name(i)); err != nil {
			return fmt.Errorf("seed matrix: insert location idx=%d: %w", i, err)
		}
	}

	distStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO distances (origin_pos, dest_pos, distance) VALUES (%s)", dialect.Placeholders(1, 3),
	))
	if err != nil {
		return fmt.Errorf("seed matrix: prepare distances insert: %w", err)
	}
	defer distStmt.Close()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell, ok := m.Cell(i, j)
			cell = strings.TrimSpace(cell)
			if !ok || cell == "" {
				continue
			}
			if _, err := distStmt.ExecContext(ctx, i, j, cell); err != nil {
				return fmt.Errorf("seed matrix: insert distance %d->%d: %w", i, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed matrix: commit tx: %w", err)
	}

	return nil
}

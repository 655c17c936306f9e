package repositories

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/db"
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn))
	return conn
}

func TestSeedAndLoadMatrix(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	m := domain.NewDistanceMatrix([][]string{
		{"From/To", " Main Gate ", "Balme Library", "Night Market"},
		{"Main Gate", "0", "0.8", "n/a"},
		{"Balme Library", "0.8", "0"},
		{"Night Market", "", "0.6", "0"},
	})
	require.NoError(t, SeedMatrix(ctx, conn, db.SQLite, m))

	got, err := NewSQLMatrixRepository(conn).LoadMatrix(ctx)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"", "Main Gate", "Balme Library", "Night Market"},
		{"Main Gate", "0", "0.8", "n/a"},
		{"Balme Library", "0.8", "0", ""},
		{"Night Market", "", "0.6", "0"},
	}, got.Cells)
}

func TestSeedMatrixReplaces(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	first := domain.NewDistanceMatrix([][]string{
		{"", "A", "B", "C"},
		{"A", "0", "1", "2"},
	})
	require.NoError(t, SeedMatrix(ctx, conn, db.SQLite, first))

	second := domain.NewDistanceMatrix([][]string{
		{"", "X", "Y"},
		{"X", "0", "3"},
		{"Y", "3", "0"},
	})
	require.NoError(t, SeedMatrix(ctx, conn, db.SQLite, second))

	got, err := NewSQLMatrixRepository(conn).LoadMatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Size())
	assert.Equal(t, "X", got.Name(0))
}

func TestLoadMatrixEmpty(t *testing.T) {
	conn := openTestDB(t)

	_, err := NewSQLMatrixRepository(conn).LoadMatrix(context.Background())
	require.ErrorIs(t, err, domain.ErrEmptyMatrix)

	err = SeedMatrix(context.Background(), conn, db.SQLite, domain.NewDistanceMatrix(nil))
	require.ErrorIs(t, err, domain.ErrEmptyMatrix)
}

func TestLoadMatrixRejectsGaps(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	_, err := conn.ExecContext(ctx, "INSERT INTO locations (idx, name) VALUES (0, 'A'), (2, 'C')")
	require.NoError(t, err)

	_, err = NewSQLMatrixRepository(conn).LoadMatrix(ctx)
	require.Error(t, err)
}

package matrix

import (
	"campus-route-service/internal/domain"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffFrom/To,Main Gate,Balme Library,Night Market\n" +
		"Main Gate,0,0.8,n/a\n" +
		",,,\n" +
		"Balme Library,0.8,0\n" +
		"Night Market,1.2,0.6,0\n"

	m, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, "From/To", m.Cells[0][0])
	assert.Equal(t, "Balme Library", m.Name(1))

	cell, ok := m.Cell(0, 2)
	require.True(t, ok)
	assert.Equal(t, "n/a", cell, "bad numbers are kept as text")

	_, ok = m.Cell(1, 2)
	assert.False(t, ok, "short rows stay ragged")

	cell, ok = m.Cell(2, 0)
	require.True(t, ok)
	assert.Equal(t, "1.2", cell)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, domain.ErrEmptyMatrix)

	_, err = ReadCSV(strings.NewReader("corner\n\n"))
	require.ErrorIs(t, err, domain.ErrEmptyMatrix)
}

func TestCSVMatrixSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.csv")
	require.NoError(t, os.WriteFile(path, []byte(",A,B\nA,0,1\nB,1,0\n"), 0o644))

	m, err := NewCSVMatrixSource(path).LoadMatrix(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())

	_, err = NewCSVMatrixSource(filepath.Join(t.TempDir(), "missing.csv")).LoadMatrix(context.Background())
	require.Error(t, err)
}

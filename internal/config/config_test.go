package config

import (
	"campus-route-service/internal/services"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Setenv("CAMPUS_TEST_VALUE", "  value ")
	assert.Equal(t, "value", Get("CAMPUS_TEST_VALUE", "fallback"))

	t.Setenv("CAMPUS_TEST_VALUE", "   ")
	assert.Equal(t, "fallback", Get("CAMPUS_TEST_VALUE", "fallback"))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MATRIX_SOURCE", "XLSX")
	t.Setenv("MATRIX_PATH", "data/campus.xlsx")
	t.Setenv("DB_DRIVER", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "xlsx", cfg.MatrixSource)
	assert.Equal(t, "sqlite", cfg.DBDriver)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown source":     {"MATRIX_SOURCE": "ftp"},
		"sql without url":    {"MATRIX_SOURCE": "sql", "DATABASE_URL": ""},
		"google without key": {"MATRIX_SOURCE": "google", "GOOGLE_MAPS_API_KEY": "", "LOCATIONS_PATH": "names.csv"},
		"non-numeric port":   {"PORT": "http"},
		"unknown driver":     {"DB_DRIVER": "oracle"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
		})
	}
}

func TestParseTuning(t *testing.T) {
	tu := services.DefaultTuning()
	require.NoError(t, ParseTuning([]byte("walking_speed: 4.5\ncorrect_segments: true\n"), &tu))

	assert.Equal(t, 4.5, tu.WalkingSpeed)
	assert.True(t, tu.CorrectSegments)
	assert.Equal(t, 5.0, tu.MaxSegment, "omitted fields keep their defaults")
	assert.Equal(t, 4, tu.MemoMaxDepth)

	bad := services.DefaultTuning()
	require.Error(t, ParseTuning([]byte("walking_speed: 0\n"), &bad))
	require.Error(t, ParseTuning([]byte("walking_speed: [fast]\n"), &bad))
}

func TestLoadTuning(t *testing.T) {
	tu, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, services.DefaultTuning(), tu)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greedy_max_hops: 6\nlandmark_limit: 5\n"), 0o644))

	tu, err = LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 6, tu.GreedyMaxHops)
	assert.Equal(t, 5, tu.LandmarkLimit)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

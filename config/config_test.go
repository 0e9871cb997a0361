package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imece/config"
	"github.com/katalvlaran/imece/terrain"
)

var allKeys = []string{
	"IMECE_GRID_FILE", "IMECE_ROWS", "IMECE_COLS", "IMECE_MAX_FLYING_HEIGHT",
	"IMECE_FUEL_COST", "IMECE_CLIMB_COST",
	"IMECE_START_X", "IMECE_START_Y", "IMECE_END_X", "IMECE_END_Y",
	"IMECE_ESCAPE_X", "IMECE_ESCAPE_Y",
	"IMECE_OUTPUT_DIR", "IMECE_GRAYSCALE_FILE", "IMECE_SCALE", "IMECE_LOG_LEVEL",
}

// clearEnv blanks every key for the duration of the test; empty means unset to Load.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFiles_FromDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables already present, so unset the blanks.
	for _, k := range allKeys {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(`
IMECE_GRID_FILE=dem.dat.zst
IMECE_ROWS=480
IMECE_COLS=640
IMECE_MAX_FLYING_HEIGHT=2000
IMECE_FUEL_COST=0.5
IMECE_START_X=10
IMECE_START_Y=20
IMECE_END_X=600
IMECE_END_Y=400
IMECE_ESCAPE_Y=240
IMECE_SCALE=2
IMECE_LOG_LEVEL=debug
`), 0o644))

	cfg, err := config.LoadFiles(path)
	require.NoError(t, err)
	assert.Equal(t, "dem.dat.zst", cfg.GridFile)
	assert.Equal(t, 480, cfg.Rows)
	assert.Equal(t, 640, cfg.Cols)
	assert.Equal(t, 2000, cfg.MaxFlyingHeight)
	assert.Equal(t, 0.5, cfg.FuelCost)
	assert.Equal(t, 1.0, cfg.ClimbCost, "default")
	assert.Equal(t, terrain.Point{X: 10, Y: 20}, cfg.Start)
	assert.Equal(t, terrain.Point{X: 600, Y: 400}, cfg.End)
	assert.Equal(t, terrain.Point{X: 0, Y: 240}, cfg.Escape)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "grayscaleMap.dat", cfg.GrayscaleFile)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadFiles_EnvWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("IMECE_GRID_FILE", "env.dat")
	t.Setenv("IMECE_ROWS", "3")
	t.Setenv("IMECE_COLS", "4")
	t.Setenv("IMECE_MAX_FLYING_HEIGHT", "5")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("IMECE_GRID_FILE=dotenv.dat\n"), 0o644))

	cfg, err := config.LoadFiles(path)
	require.NoError(t, err)
	assert.Equal(t, "env.dat", cfg.GridFile)
}

func TestLoadFiles_ReportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("IMECE_ROWS", "-1")
	t.Setenv("IMECE_COLS", "ten")
	t.Setenv("IMECE_FUEL_COST", "-2")
	t.Setenv("IMECE_SCALE", "0")
	t.Setenv("IMECE_LOG_LEVEL", "chatty")

	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := config.LoadFiles(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingEnv, "grid file and ceiling are missing")
	assert.ErrorIs(t, err, config.ErrBadEnv)
	for _, key := range []string{"IMECE_GRID_FILE", "IMECE_ROWS", "IMECE_COLS", "IMECE_MAX_FLYING_HEIGHT",
		"IMECE_FUEL_COST", "IMECE_SCALE", "IMECE_LOG_LEVEL"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadFiles_MissingDotEnv(t *testing.T) {
	_, err := config.LoadFiles(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

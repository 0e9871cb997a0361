// Package config loads cmd/imece settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/imece/terrain"
)

var (
	// ErrMissingEnv indicates a required variable is unset or empty.
	ErrMissingEnv = errors.New("config: required environment variable not set")
	// ErrBadEnv indicates a variable that does not parse or is out of range.
	ErrBadEnv = errors.New("config: invalid environment variable")
)

// Config holds the run configuration.
type Config struct {
	GridFile        string        // elevation source; .lz4/.zst are decompressed
	Rows            int           // grid height
	Cols            int           // grid width
	MaxFlyingHeight int           // exclusive elevation ceiling
	FuelCost        float64       // cost per unit of distance
	ClimbCost       float64       // cost per unit climbed
	Start           terrain.Point // route origin, (column,row)
	End             terrain.Point // route destination, (column,row)
	Escape          terrain.Point // escape origin, (column,row)
	OutputDir       string        // where images and the grayscale export go
	GrayscaleFile   string        // grayscale export name inside OutputDir
	Scale           int           // integer upscale factor for images
	LogLevel        slog.Level    // minimum log level
}

// Load reads .env from the working directory if present, then the
// environment. Existing environment variables win over .env entries.
func Load() (Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env files. With no files it tries ".env"
// and tolerates its absence.
func LoadFiles(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", strings.Join(files, ","), err)
	}

	var (
		r   reader
		cfg Config
	)
	cfg.GridFile = r.mustString("IMECE_GRID_FILE")
	cfg.Rows = r.mustPositiveInt("IMECE_ROWS")
	cfg.Cols = r.mustPositiveInt("IMECE_COLS")
	cfg.MaxFlyingHeight = r.mustPositiveInt("IMECE_MAX_FLYING_HEIGHT")
	cfg.FuelCost = r.nonNegativeFloat("IMECE_FUEL_COST", 1)
	cfg.ClimbCost = r.nonNegativeFloat("IMECE_CLIMB_COST", 1)
	cfg.Start = terrain.Point{X: r.int("IMECE_START_X", 0), Y: r.int("IMECE_START_Y", 0)}
	cfg.End = terrain.Point{X: r.int("IMECE_END_X", 0), Y: r.int("IMECE_END_Y", 0)}
	cfg.Escape = terrain.Point{X: r.int("IMECE_ESCAPE_X", 0), Y: r.int("IMECE_ESCAPE_Y", 0)}
	cfg.OutputDir = getEnvWithDefault("IMECE_OUTPUT_DIR", ".")
	cfg.GrayscaleFile = filepath.Base(getEnvWithDefault("IMECE_GRAYSCALE_FILE", "grayscaleMap.dat"))
	cfg.Scale = r.int("IMECE_SCALE", 1)
	if cfg.Scale < 1 {
		r.fail(fmt.Errorf("%w: IMECE_SCALE must be >= 1, got %d", ErrBadEnv, cfg.Scale))
	}
	cfg.LogLevel = r.level("IMECE_LOG_LEVEL", slog.LevelInfo)

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// reader collects every problem so one run reports all of them.
type reader struct {
	errs []error
}

func (r *reader) fail(err error) { r.errs = append(r.errs, err) }

func (r *reader) mustString(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		r.fail(fmt.Errorf("%w: %s", ErrMissingEnv, key))
		return ""
	}
	return value
}

func (r *reader) mustPositiveInt(key string) int {
	s := r.mustString(key)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		r.fail(fmt.Errorf("%w: %s must be a positive integer, got %q", ErrBadEnv, key, s))
		return 0
	}
	return v
}

func (r *reader) int(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		r.fail(fmt.Errorf("%w: %s must be an integer, got %q", ErrBadEnv, key, s))
		return def
	}
	return v
}

func (r *reader) nonNegativeFloat(key string, def float64) float64 {
	s, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		r.fail(fmt.Errorf("%w: %s must be a non-negative number, got %q", ErrBadEnv, key, s))
		return def
	}
	return v
}

func (r *reader) level(key string, def slog.Level) slog.Level {
	s, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		r.fail(fmt.Errorf("%w: %s: %v", ErrBadEnv, key, err))
		return def
	}
	return lvl
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Package config loads CLI settings from the environment and an optional
// .env file.
//
// Recognised keys (all optional):
//
//	NWCORNER_SOURCE       prompt | preset | random | file   (default prompt)
//	NWCORNER_FILE         YAML problem path, required for source=file
//	NWCORNER_ROWS         suppliers for source=random, clamped to 1..6 (default 3)
//	NWCORNER_COLS         consumers for source=random, clamped to 1..6 (default 3)
//	NWCORNER_SEED         RNG seed for source=random; 0 picks a time-based seed
//	NWCORNER_FRAME_DELAY  pause between animation frames (default 900ms)
//	NWCORNER_BAR_WIDTH    progress bar cells (default 30)
//	NWCORNER_LOG_LEVEL    debug | info | warn | error (default warn)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/nwcorner/animate"
	"github.com/katalvlaran/nwcorner/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure together with the key name.
var ErrInvalidConfig = errors.New("config: invalid value")

// Source selects where the problem comes from.
type Source string

const (
	SourcePrompt Source = "prompt"
	SourcePreset Source = "preset"
	SourceRandom Source = "random"
	SourceFile   Source = "file"
)

const (
	keySource     = "NWCORNER_SOURCE"
	keyFile       = "NWCORNER_FILE"
	keyRows       = "NWCORNER_ROWS"
	keyCols       = "NWCORNER_COLS"
	keySeed       = "NWCORNER_SEED"
	keyFrameDelay = "NWCORNER_FRAME_DELAY"
	keyBarWidth   = "NWCORNER_BAR_WIDTH"
	keyLogLevel   = "NWCORNER_LOG_LEVEL"

	defaultDimension = 3
	// MinDimension and MaxDimension bound the random generator's grid.
	MinDimension = 1
	MaxDimension = 6
)

// Config is the resolved CLI configuration.
type Config struct {
	Source     Source
	File       string
	Rows       int
	Cols       int
	Seed       int64
	FrameDelay time.Duration
	BarWidth   int
	LogLevel   slog.Level
}

// Default returns the configuration used when no key is set.
func Default() Config {
	return Config{
		Source:     SourcePrompt,
		Rows:       defaultDimension,
		Cols:       defaultDimension,
		FrameDelay: animate.DefaultDelay,
		BarWidth:   animate.DefaultBarWidth,
		LogLevel:   slog.LevelWarn,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables that are already set,
// then resolves the configuration from the environment.
// Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration through lookup (os.LookupEnv in
// production, a map in tests).
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)

		return v, ok && v != ""
	}

	if v, ok := get(keySource); ok {
		switch s := Source(strings.ToLower(v)); s {
		case SourcePrompt, SourcePreset, SourceRandom, SourceFile:
			cfg.Source = s
		default:
			return Config{}, invalid(keySource, v)
		}
	}
	if v, ok := get(keyFile); ok {
		cfg.File = v
	}
	if cfg.Source == SourceFile && cfg.File == "" {
		return Config{}, fmt.Errorf("%s: required when %s=file: %w", keyFile, keySource, ErrInvalidConfig)
	}

	var err error
	if cfg.Rows, err = intKey(get, keyRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = intKey(get, keyCols, cfg.Cols); err != nil {
		return Config{}, err
	}
	cfg.Rows = clamp(cfg.Rows, MinDimension, MaxDimension)
	cfg.Cols = clamp(cfg.Cols, MinDimension, MaxDimension)

	if v, ok := get(keySeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, invalid(keySeed, v)
		}
	}
	if v, ok := get(keyFrameDelay); ok {
		if cfg.FrameDelay, err = time.ParseDuration(v); err != nil || cfg.FrameDelay < 0 {
			return Config{}, invalid(keyFrameDelay, v)
		}
	}
	if cfg.BarWidth, err = intKey(get, keyBarWidth, cfg.BarWidth); err != nil {
		return Config{}, err
	}
	if cfg.BarWidth <= 0 {
		return Config{}, invalid(keyBarWidth, strconv.Itoa(cfg.BarWidth))
	}
	if v, ok := get(keyLogLevel); ok {
		level, known := logging.ParseLevel(v)
		if !known {
			return Config{}, invalid(keyLogLevel, v)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func intKey(get func(string) (string, bool), key string, def int) (int, error) {
	v, ok := get(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(key, v)
	}

	return n, nil
}

func invalid(key, value string) error {
	return fmt.Errorf("%s=%q: %w", key, value, ErrInvalidConfig)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

package server

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel     = "IMAGE_STYLE_LOG_LEVEL"
	EnvSeed         = "IMAGE_STYLE_SEED"
	EnvMaxDimension = "IMAGE_STYLE_MAX_DIMENSION"
	EnvMaxPixels    = "IMAGE_STYLE_MAX_PIXELS"
)

// Config holds server-wide defaults. Per-call tool arguments override them.
type Config struct {
	// Debug enables debug logging.
	Debug bool

	// Seed is the dithering seed used when a call does not set one.
	Seed uint64

	// MaxDimension downsizes inputs whose longer side exceeds it.
	// Zero keeps input dimensions.
	MaxDimension int

	// MaxPixels rejects inputs whose header declares more than this many
	// pixels. Zero selects imageio.DefaultMaxPixels.
	MaxPixels int
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{Seed: raster.DefaultSeed}
}

// ConfigFromEnv builds a Config from environment lookups. getenv is usually
// os.Getenv. The seed accepts decimal or 0x-prefixed hex.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := getenv(EnvMaxDimension); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvMaxDimension, v)
		}
		cfg.MaxDimension = n
	}

	if v := getenv(EnvMaxPixels); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvMaxPixels, v)
		}
		cfg.MaxPixels = n
	}

	return cfg, nil
}

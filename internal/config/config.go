// Package config loads runtime settings from the environment.
//
// An optional .env file in the working directory is read first; variables
// already set in the environment take precedence over it.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ironsheep/hexblend-mcp/internal/hexcolor"
)

// Environment variable names.
const (
	EnvLogLevel   = "HEXBLEND_LOG_LEVEL"
	EnvSwatchCell = "HEXBLEND_SWATCH_CELL"
)

// Config holds the server settings.
type Config struct {
	LogLevel   string // zerolog level name, e.g. "debug"
	SwatchCell int    // default cell size for color_swatch, in pixels
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:   "info",
		SwatchCell: hexcolor.DefaultSwatchCell,
	}
}

// Warning describes an environment value that was ignored.
type Warning struct {
	Key   string
	Value string
	Used  string
}

// Load reads .env (if present) and the environment.
// Invalid values fall back to defaults and are reported as warnings, since
// logging is not configured yet when Load runs.
func Load() (Config, []Warning) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, []Warning) {
	cfg := Default()
	var warnings []Warning

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if _, err := zerolog.ParseLevel(v); err != nil {
			warnings = append(warnings, Warning{Key: EnvLogLevel, Value: v, Used: cfg.LogLevel})
		} else {
			cfg.LogLevel = v
		}
	}

	if v, ok := lookup(EnvSwatchCell); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < hexcolor.MinSwatchCell || n > hexcolor.MaxSwatchCell {
			warnings = append(warnings, Warning{Key: EnvSwatchCell, Value: v, Used: strconv.Itoa(cfg.SwatchCell)})
		} else {
			cfg.SwatchCell = n
		}
	}

	return cfg, warnings
}

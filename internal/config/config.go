// Package config resolves the playback settings from built-in defaults, an
// optional TOML defaults file, the environment and key=value arguments.
package config

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rook-computer/gifterm/internal/palette"
)

const (
	EnvConfigPath = "GIFTERM_CONFIG"
	EnvDebug      = "GIFTERM_DEBUG"
	EnvStdioLog   = "GIFTERM_STDIO_LOG"

	// MaxColors is the largest color cap a GIF table can hold.
	MaxColors = 256
)

// PlaybackConfig holds the user-level settings. It is read-only once
// playback starts.
type PlaybackConfig struct {
	Glyph   string  `toml:"char"`
	Colors  int     `toml:"colors"`
	Dither  bool    `toml:"dither"`
	Palette string  `toml:"palette"`
	Reverse bool    `toml:"reverse"`
	Speed   float64 `toml:"speed"`
	Debug   bool    `toml:"debug"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() PlaybackConfig {
	return PlaybackConfig{Dither: true, Speed: 1}
}

// UsageError is a user-facing configuration problem. It is always fatal.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Validate checks every field and normalizes the palette name.
func (c PlaybackConfig) Validate() (PlaybackConfig, error) {
	if n := utf8.RuneCountInString(c.Glyph); n > 2 {
		return c, usagef("char must be 1 or 2 characters (got %q)", c.Glyph)
	}
	if c.Colors < 0 || c.Colors > MaxColors {
		return c, usagef("colors must be between 1 and %d (got %d)", MaxColors, c.Colors)
	}
	if c.Speed <= 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return c, usagef("speed must be a positive number (got %v)", c.Speed)
	}
	if c.Palette != "" {
		ref, err := palette.Lookup(c.Palette)
		if err != nil {
			return c, usagef("%v", err)
		}
		c.Palette = ""
		if ref != nil {
			c.Palette = ref.Name
		}
	}
	return c, nil
}

// Reference returns the configured reference palette, or nil for none.
func (c PlaybackConfig) Reference() (*palette.Reference, error) {
	if c.Palette == "" {
		return nil, nil
	}
	return palette.Lookup(c.Palette)
}

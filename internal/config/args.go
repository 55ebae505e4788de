package config

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rook-computer/gifterm/internal/palette"
)

var truthy = map[string]bool{"1": true, "t": true, "true": true, "y": true, "yes": true, "on": true}

// ApplyArgs layers key=value arguments onto base. Unknown keys and
// arguments without '=' are ignored.
func ApplyArgs(base PlaybackConfig, args []string) (PlaybackConfig, error) {
	cfg := base
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "char":
			if n := utf8.RuneCountInString(value); n < 1 || n > 2 {
				return base, usagef("char must be 1 or 2 characters (got %q)", value)
			}
			cfg.Glyph = value
		case "colors":
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 1 || n > MaxColors {
				return base, usagef("colors must be an integer between 1 and %d (got %q)", MaxColors, value)
			}
			cfg.Colors = n
		case "dither":
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "true":
				cfg.Dither = true
			case "false":
				cfg.Dither = false
			default:
				return base, usagef("dither must be true or false (got %q)", value)
			}
		case "palette":
			ref, err := palette.Lookup(value)
			if err != nil {
				return base, usagef("%v", err)
			}
			cfg.Palette = ""
			if ref != nil {
				cfg.Palette = ref.Name
			}
		case "reverse":
			cfg.Reverse = truthy[strings.ToLower(strings.TrimSpace(value))]
		case "speed":
			f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return base, usagef("speed must be a positive number (got %q)", value)
			}
			cfg.Speed = f
		case "debug":
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return base, usagef("debug must be a boolean (got %q)", value)
			}
			cfg.Debug = b
		}
	}
	return cfg, nil
}

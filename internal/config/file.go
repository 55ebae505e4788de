package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile decodes a TOML defaults file on top of base. Keys absent from
// the file keep their base value.
func LoadFile(path string, base PlaybackConfig) (PlaybackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, usagef("failed to read config file: %v", err)
	}
	cfg := base
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return base, usagef("failed to parse config file %s: %v", path, err)
	}
	return cfg.Validate()
}

// FromEnv applies environment overrides to base.
func FromEnv(base PlaybackConfig) (PlaybackConfig, error) {
	cfg := base
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return base, usagef("%s must be a boolean (got %q): %v", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	return cfg, nil
}

// Resolve builds the final configuration: defaults, then the defaults file
// (explicit path, else $GIFTERM_CONFIG), then the environment, then args.
func Resolve(path string, args []string) (PlaybackConfig, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		loaded, err := LoadFile(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg, err := FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	cfg, err = ApplyArgs(cfg, args)
	if err != nil {
		return cfg, fmt.Errorf("invalid argument: %w", err)
	}
	return cfg, nil
}

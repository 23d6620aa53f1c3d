package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultNames are the people created when no names are configured.
var DefaultNames = []string{"Bob", "Jeff", "Chad", "Stacy"}

// Settings is the typed configuration for a brood run.
type Settings struct {
	Names      []string
	LogLevel   string
	CensusPath string
	Metrics    bool
	Tracing    bool
}

// Defaults returns the settings used when no config file is given.
func Defaults() Settings {
	names := make([]string, len(DefaultNames))
	copy(names, DefaultNames)
	return Settings{
		Names:    names,
		LogLevel: "warn",
	}
}

// FromConfig overlays the values present in cfg onto Defaults.
func FromConfig(cfg Config) (Settings, error) {
	s := Defaults()
	if cfg.Has("names") {
		names := cfg.StringSlice("names", nil)
		if names == nil {
			return Settings{}, errors.New("names: expected a list of strings")
		}
		s.Names = names
	}
	s.LogLevel = cfg.String("log_level", s.LogLevel)
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return Settings{}, err
	}
	s.CensusPath = cfg.Section("census").String("path", s.CensusPath)
	s.Metrics = cfg.Bool("metrics", s.Metrics)
	s.Tracing = cfg.Bool("tracing", s.Tracing)
	return s, nil
}

// Load reads settings from path. An empty path yields Defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Defaults(), nil
	}
	cfg, err := FromFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := FromConfig(cfg)
	if err != nil {
		return Settings{}, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

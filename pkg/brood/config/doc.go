/*
Package config loads brood settings from YAML or JSON.

# Overview

Config wraps a map[string]any and provides typed accessors that fall back
to a default when a key is missing or holds the wrong type. Settings is the
typed view the brood command uses.

# Basic Usage

	cfg, err := config.FromFile("brood.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	names := cfg.StringSlice("names", nil)

Or go straight to typed settings:

	settings, err := config.Load("brood.yaml") // "" yields Defaults()

# File Format

	names: [Bob, Jeff, Chad, Stacy]
	log_level: debug
	metrics: true
	tracing: false
	census:
	  path: ./census.db

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config

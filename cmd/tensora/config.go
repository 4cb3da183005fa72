package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config selects the coefficient ring and the base-module basis for the
// hopf command. TOML shape:
//
//	ring  = "rational"        # or "integer", "real"
//	basis = ["a", "b", "c"]
type Config struct {
	Ring  string   `toml:"ring"`
	Basis []string `toml:"basis"`
}

// defaultConfig is used when no config file is given.
func defaultConfig() Config {
	return Config{Ring: "rational", Basis: []string{"a", "b", "c"}}
}

// loadConfig reads and validates a TOML config; an empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	switch cfg.Ring {
	case "rational", "integer", "real":
	default:
		return Config{}, fmt.Errorf("unknown ring %q (want rational, integer or real)", cfg.Ring)
	}
	if len(cfg.Basis) == 0 {
		return Config{}, fmt.Errorf("config %s: empty basis", path)
	}
	return cfg, nil
}

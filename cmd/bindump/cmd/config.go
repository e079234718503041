package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI defaults a user can keep in a TOML file; flags
// override whatever the file sets.
type Config struct {
	Unchecked bool `toml:"unchecked"`
	Trace     bool `toml:"trace"`
	Width     int  `toml:"width"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{Width: 16}
}

// LoadConfig reads a TOML config file, or the defaults when path is empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undec[0].String())
	}
	if cfg.Width <= 0 {
		return Config{}, fmt.Errorf("load config: width must be positive, got %d", cfg.Width)
	}
	return cfg, nil
}

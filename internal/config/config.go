package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"toyrobot/internal/interpreter"
)

// Config is the operator-facing configuration of the robot shell.
type Config struct {
	// Table bounds; an omitted dimension leaves the table unset until the
	// shell sets it.
	Table interpreter.Bounds `yaml:"table"`
	// MoveBudget is the number of moves granted by PLACE and reset.
	MoveBudget int    `yaml:"move_budget"`
	LogLevel   string `yaml:"log_level"`
	// LogFile receives the log of the interactive shell. Empty discards it.
	LogFile string `yaml:"log_file"`
}

// DefaultSearch lists the files Load tries when no path is given.
var DefaultSearch = []string{"toyrobot.yaml", ".toyrobot.yaml"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Table:      interpreter.Bounds{Rows: 5, Cols: 5},
		MoveBudget: interpreter.DefaultBudget,
		LogLevel:   "info",
	}
}

// Load reads configuration from path over the defaults.
// If path is empty the DefaultSearch files are tried in order, and finding
// none of them is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		for _, name := range DefaultSearch {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", name, err)
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no session can run with.
func (c *Config) Validate() error {
	if c.MoveBudget < 0 {
		return fmt.Errorf("move_budget must not be negative, got %d", c.MoveBudget)
	}
	if c.Table.Rows < 0 || c.Table.Cols < 0 {
		return fmt.Errorf("table size must not be negative, got %dx%d", c.Table.Cols, c.Table.Rows)
	}
	return nil
}

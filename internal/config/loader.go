package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when CONFIG_PATH is not set.
var defaultPaths = []string{
	"./config.yaml",
	"./config/mealplanner.yaml",
}

// Load reads the planner configuration.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file is CONFIG_PATH when set, otherwise the first existing entry
// of defaultPaths. With no file at all, configuration comes from ENV and
// defaults only, which is how the container images run.
func Load() (*Config, error) {
	var cfg Config

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// configPath returns the YAML file to read, or "" for env-only mode.
// An explicit CONFIG_PATH must exist.
func configPath() (string, error) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config: file %s: %w", p, err)
		}
		return p, nil
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

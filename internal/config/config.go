// Package config resolves the trajectory root and log directory from flags,
// environment and an optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvRoot overrides the trajectory root directory.
	EnvRoot = "SWE_TRAJ_DIR"
	// EnvLogDir overrides where result logs are appended.
	EnvLogDir = "SWE_TRAJ_LOG_DIR"

	fileName = ".trajlens.yaml"
)

// Config holds resolved settings. Precedence: flags (applied by the caller)
// > environment > config file > defaults.
type Config struct {
	Root   string `yaml:"root"`
	LogDir string `yaml:"log_dir"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Root:   "./trajectories",
		LogDir: ".",
	}
}

// Load resolves configuration from defaults, an optional .trajlens.yaml in
// the working directory or home, and environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := findFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvRoot); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		cfg.LogDir = v
	}

	return cfg, nil
}

func findFile() string {
	if _, err := os.Stat(fileName); err == nil {
		return fileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, fileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

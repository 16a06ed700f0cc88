// Package config loads the optional app config file (~/.drillcoach.yaml).
// A missing file yields defaults; only a malformed file is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path"`
	// Language is the speech language tag used when the profile has none.
	Language string `yaml:"language"`
}

func Default() Config {
	return Config{Language: "en-US"}
}

func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".drillcoach.yaml"), nil
}

func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Language == "" {
		cfg.Language = Default().Language
	}
	return cfg, nil
}

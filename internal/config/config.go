// Package config loads the optional configuration file for the unidiff command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"unidiff.yml",
	"unidiff.yaml",
	".unidiff.yml",
	".unidiff.yaml",
}

// Config holds the settings the unidiff command reads from its config file. Fields left out of the YAML keep their defaults.
type Config struct {
	// Strip is the number of leading path components removed from filenames by `unidiff strip` when no -p flag is given.
	Strip int `yaml:"strip"`

	// StatNameWidth caps the filename column width of `unidiff stat`. Longer names widen their own row but not the column.
	StatNameWidth int `yaml:"stat_name_width"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Strip:         0,
		StatNameWidth: 50,
	}
}

// Discover returns the path of the first config file found in dir, following the standard search order, or an empty string if none exists.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a unidiff config file. If configPath is empty, the current working directory is searched with Discover; when no file is found,
// DefaultConfig is returned.
//
// Partial YAML files are supported: fields not specified in the YAML retain their default values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	return cfg, nil
}

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig holds the subset of settings that may be supplied by
// --config instead of flags. Flags always take precedence over the
// file, mirroring the config-file-plus-flag-overrides convention used
// elsewhere in the corpus.
type fileConfig struct {
	UserName string `yaml:"user-name"`
	Timeout  int    `yaml:"timeout"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package statevis // import "github.com/statevis/statevis"

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the optional YAML configuration file.  Absent fields keep
// the built-in defaults.
type Config struct {
	Unusual      []string `yaml:"unusual"`
	StartMarkers []string `yaml:"start_markers"`
}

// LoadConfig reads the YAML file at path and overlays it on opts.
func LoadConfig(path string, opts Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return opts, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Unusual != nil {
		opts.Unusual = cfg.Unusual
	}
	if cfg.StartMarkers != nil {
		opts.StartMarkers = cfg.StartMarkers
	}
	return opts, nil
}

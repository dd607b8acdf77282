package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects how vectors are printed.
type Format string

const (
	// FormatGrid prints the 4x6 MOG picture.
	FormatGrid Format = "grid"
	// FormatList prints the point indices.
	FormatList Format = "list"
)

// ErrUnknownFormat is returned for a format other than grid or list.
var ErrUnknownFormat = errors.New("mog: unknown format")

// Config is the optional YAML configuration of the CLI.
type Config struct {
	Format Format `yaml:"format"`
}

// DefaultConfig prints vectors as grids.
func DefaultConfig() Config {
	return Config{Format: FormatGrid}
}

// LoadConfig reads path, filling unset fields from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	switch cfg.Format {
	case FormatGrid, FormatList:
	case "":
		cfg.Format = FormatGrid
	default:
		return Config{}, fmt.Errorf("%w %q", ErrUnknownFormat, cfg.Format)
	}
	return cfg, nil
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatHTML = "html"
)

// settings is the merged CLI configuration: file values first, flags
// on top.
type settings struct {
	MaxDepth int    `yaml:"max_depth"`
	Format   string `yaml:"format"`
}

func loadConfigFile(path string) (settings, error) {
	var s settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// merge applies flag values over file values and defaults the format.
func (s settings) merge(flagFormat string, flagMaxDepth int) (settings, error) {
	if flagFormat != "" {
		s.Format = flagFormat
	}
	if flagMaxDepth != 0 {
		s.MaxDepth = flagMaxDepth
	}
	if s.Format == "" {
		s.Format = formatJSON
	}
	if s.Format != formatJSON && s.Format != formatHTML {
		return s, fmt.Errorf("unknown format %q (want %s or %s)", s.Format, formatJSON, formatHTML)
	}
	if s.MaxDepth < 0 {
		return s, fmt.Errorf("max depth must not be negative, got %d", s.MaxDepth)
	}
	return s, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package config handles the optional quicktype project configuration.
package config

import (
	"os"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the quicktype.yaml project configuration file. All
// fields besides Version are defaults that command-line flags override.
type Config struct {
	Version  int    `yaml:"version"`
	Lang     string `yaml:"lang,omitempty"`     // default target language
	Out      string `yaml:"out,omitempty"`      // default output path
	TopLevel string `yaml:"topLevel,omitempty"` // default top-level type name
	Package  string `yaml:"package,omitempty"`  // package name for Go output
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return errors.WithStack(enc.Encode(c))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return nil
}

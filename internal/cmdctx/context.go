// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package cmdctx carries the resolved project context through CLI commands.
package cmdctx

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/quicktype/quicktype/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.Base("invalid configuration")

// ConfigFileName is the name of the quicktype configuration file.
const ConfigFileName = "quicktype.yaml"

type contextKey struct{}

// Context holds the resolved project configuration. Config is nil when the
// working directory has no quicktype.yaml; every setting then comes from
// flags alone.
type Context struct {
	Config *config.Config
}

// Load reads quicktype.yaml from the current working directory, if present,
// and returns a new context.Context with the quicktype Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting current directory: %w", err)
	}

	qc := &Context{}
	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, errors.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		qc.Config = cfg
	}

	return With(ctx, qc), nil
}

// With stores the quicktype Context in a context.Context.
func With(ctx context.Context, qc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, qc)
}

// From extracts the quicktype Context. Returns nil if none is stored.
func From(ctx context.Context) *Context {
	qc, _ := ctx.Value(contextKey{}).(*Context)
	return qc
}

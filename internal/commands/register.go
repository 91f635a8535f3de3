// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/quicktype/quicktype/internal/cmdctx"

	// Import language backends to auto-register.
	_ "github.com/quicktype/quicktype/internal/render/golang"
	_ "github.com/quicktype/quicktype/internal/render/python"
	_ "github.com/quicktype/quicktype/internal/render/typescript"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := newGenerateCmd()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		handler := slogctx.NewHandler(
			slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}), nil)
		cmd.SetContext(slogctx.NewCtx(cmd.Context(), slog.New(handler)))
		return cmdctx.PreRunLoad(cmd, args)
	}

	registerLanguagesCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/quicktype/quicktype/internal/cmdctx"
	"github.com/quicktype/quicktype/internal/jschema"
	"github.com/quicktype/quicktype/internal/prompts"
	"github.com/quicktype/quicktype/internal/render"
	"github.com/quicktype/quicktype/internal/samples"
	"github.com/quicktype/quicktype/internal/typegraph"
)

type generateOptions struct {
	lang     string
	out      string
	topLevel string
	srcType  string
	pkg      string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "quicktype [input files]",
		Short: "Generate types in a target language from sample JSON or JSON Schema",
		Long: fmt.Sprintf(`Infer a type model from sample JSON (or JSON Schema) documents and emit
matching type definitions in a target language.

Available languages: %s`, strings.Join(render.Available(), ", ")),
		Example: `  # Generate Go types from a sample, written to stdout
  quicktype person.json --lang go

  # Read the sample from stdin with an explicit top-level name
  cat person.json | quicktype --lang typescript --top-level Person

  # Multiple samples of the same shape merge into one top level
  quicktype --top-level Person day1.json day2.json --lang python

  # Generate from a JSON Schema instead of samples
  quicktype api.schema.json --src-type schema --lang go -o model.go`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", fmt.Sprintf("Target language (%s)", strings.Join(render.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.topLevel, "top-level", "t", "", "Top-level type name")
	cmd.Flags().StringVarP(&opts.srcType, "src-type", "s", "", "Input kind: json, yaml, or schema (default detected per file)")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package name for Go output")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	qc, err := cmdctx.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	// quicktype.yaml supplies defaults for anything the flags left unset.
	if qc.Config != nil {
		cfg := qc.Config
		if opts.lang == "" {
			opts.lang = cfg.Lang
		}
		if opts.out == "" {
			opts.out = cfg.Out
		}
		if opts.topLevel == "" {
			opts.topLevel = cfg.TopLevel
		}
		if opts.pkg == "" {
			opts.pkg = cfg.Package
		}
	}

	// Prompt for whatever is still missing.
	topLevel := opts.topLevel
	if topLevel == "" && len(args) > 0 {
		// A file name is a good enough top-level proposal; no prompt needed.
		topLevel = rootNameForFile(args[0])
	}
	if err := prompts.RunGenerateForm(&opts.lang, &topLevel, render.Available()); err != nil {
		return err
	}

	lang, err := render.Get(opts.lang)
	if err != nil {
		return err
	}

	graph := typegraph.NewGraph()
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Errorf("reading stdin: %w", err)
		}
		if err := foldInput(graph, data, "stdin", topLevel, opts.srcType); err != nil {
			return err
		}
	}
	for i, path := range args {
		data, err := os.ReadFile(path) //nolint:gosec // user-supplied input path
		if err != nil {
			return errors.Errorf("reading %s: %w", path, err)
		}
		// Every input folds into the same top level when one was named;
		// otherwise each file declares its own root.
		rootName := topLevel
		if opts.topLevel == "" && i > 0 {
			rootName = rootNameForFile(path)
		}
		if err := foldInput(graph, data, path, rootName, opts.srcType); err != nil {
			return err
		}
	}
	graph.Build()

	slogctx.Debug(cmd.Context(), "inferred type graph",
		"roots", len(graph.Roots), "classes", len(graph.Classes), "unions", len(graph.Unions))

	model, err := render.Prepare(graph, lang)
	if err != nil {
		return err
	}
	if opts.pkg != "" {
		model.Extra["Package"] = opts.pkg
	}
	output, err := lang.Render(model)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = cmd.OutOrStdout().Write(output)
		return errors.WithStack(err)
	}
	if err := os.WriteFile(opts.out, output, 0o644); err != nil { //nolint:gosec // generated source
		return errors.Errorf("writing %s: %w", opts.out, err)
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Language", Value: lang.DisplayName()},
		{Label: "Types", Value: fmt.Sprintf("%d", len(model.Defs))},
		{Label: "Output", Value: opts.out},
	}, "Generation complete")
	return nil
}

// foldInput parses one input document and folds it into the graph.
func foldInput(g *typegraph.Graph, data []byte, path, rootName, srcType string) error {
	switch kindOfInput(path, srcType) {
	case "schema":
		schema, keyOrder, err := jschema.Load(data, path)
		if err != nil {
			return err
		}
		return jschema.Convert(g, rootName, schema, keyOrder)
	case "yaml":
		v, err := samples.ParseYAML(data)
		if err != nil {
			return err
		}
		g.Fold(rootName, v)
		return nil
	default:
		v, err := samples.ParseJSON(data)
		if err != nil {
			return err
		}
		g.Fold(rootName, v)
		return nil
	}
}

func kindOfInput(path, srcType string) string {
	if srcType != "" {
		return srcType
	}
	switch {
	case strings.HasSuffix(path, ".schema.json"), strings.HasSuffix(path, ".schema.yaml"):
		return "schema"
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return "yaml"
	default:
		return "json"
	}
}

// rootNameForFile derives a top-level name proposal from an input path.
func rootNameForFile(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".schema")
	if base == "" || base == "-" {
		return "TopLevel"
	}
	return base
}

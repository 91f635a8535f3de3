// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package render defines the contract a target-language backend implements
// against a finalized type graph and name table, plus the registry the CLI
// uses to look backends up.
package render

import (
	"sort"

	"gitlab.com/tozd/go/errors"

	"github.com/quicktype/quicktype/internal/naming"
	"github.com/quicktype/quicktype/internal/typegraph"
)

// Language is one code-emitting backend. It supplies its reserved words and
// naming styles to the naming engine, type syntax through a TypeWriter, and
// finally renders the prepared model to source text. A Language never
// mutates the graph or the name table.
type Language interface {
	// Name returns the backend's identifier (e.g. "go", "python").
	Name() string

	// DisplayName returns the human-readable language name.
	DisplayName() string

	// FileExtension returns the output file extension (e.g. ".go").
	FileExtension() string

	// EditorMode returns the syntax-highlighting mode tag for editors.
	EditorMode() string

	// ReservedWords returns identifiers the target language forbids.
	ReservedWords() []string

	// Styles returns the naming policy per semantic category.
	Styles() Styles

	// Types returns the backend's type syntax writer.
	Types() TypeWriter

	// EnrichField applies language-specific post-processing to a field:
	// optional wrapping, annotations, and the like.
	EnrichField(f *Field)

	// Render emits source text for a prepared model.
	Render(m *Model) ([]byte, error)
}

// Styles is a language's naming policy, one namer per semantic category.
type Styles struct {
	TypeName naming.Identifier
	TopLevel naming.Identifier
	Property naming.Identifier
}

// TypeWriter produces backend syntax for each type variant. Entity
// references arrive pre-resolved as names from the name table.
type TypeWriter interface {
	// Primitive renders Null, Bool, Integer, Double, String, or Nothing.
	Primitive(k typegraph.Kind) string

	// Array wraps an element type string.
	Array(elem string) string

	// Map wraps a value type string for a string-keyed dictionary.
	Map(value string) string

	// Ref renders a reference to a named class or union.
	Ref(name string) string

	// Optional renders a simple nullable occupying a nested position,
	// such as an array of nullable strings.
	Optional(inner string) string

	// Union renders a union that is not a simple nullable. Backends
	// without a native sum representation may fall back to a dynamic type.
	Union(name string, members []string) string
}

var registry = make(map[string]Language)

// Register adds a language backend to the registry.
func Register(lang Language) {
	registry[lang.Name()] = lang
}

// Get retrieves a backend by name.
func Get(name string) (Language, error) {
	lang, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown language: %s", name)
	}
	return lang, nil
}

// Available returns all registered backend names, sorted.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

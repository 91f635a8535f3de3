// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package python renders a type graph as Python dataclasses.
package python

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"gitlab.com/tozd/go/errors"

	"github.com/quicktype/quicktype/internal/naming"
	"github.com/quicktype/quicktype/internal/render"
	"github.com/quicktype/quicktype/internal/typegraph"
)

//go:embed python.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "python.py.tmpl"))

func init() {
	render.Register(&Language{})
}

// Language emits @dataclass definitions; nullable properties become
// Optional[...] with a None default.
type Language struct{}

func (l *Language) Name() string          { return "python" }
func (l *Language) DisplayName() string   { return "Python" }
func (l *Language) FileExtension() string { return ".py" }
func (l *Language) EditorMode() string    { return "python" }

func (l *Language) ReservedWords() []string {
	return []string{
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else",
		"except", "finally", "for", "from", "global", "if", "import",
		"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
		"return", "try", "while", "with", "yield",
		// Builtins that generated property names must not shadow.
		"id", "type", "list", "dict", "str", "int", "float", "bool",
	}
}

func (l *Language) Styles() render.Styles {
	return render.Styles{
		TypeName: naming.Identifier{Style: naming.UpperCamel},
		TopLevel: naming.Identifier{Style: naming.UpperCamel},
		Property: naming.Identifier{Legalize: snakeCase},
	}
}

func (l *Language) Types() render.TypeWriter { return writer{} }

func (l *Language) EnrichField(f *render.Field) {
	if f.Nullable {
		f.Type = "Optional[" + f.Type + "]"
		f.Tag = " = None"
	}
}

func (l *Language) Render(m *render.Model) ([]byte, error) {
	// A dataclass rejects a non-default field declared after a defaulted
	// one, so every field carrying a default moves to the back.
	for i := range m.Defs {
		fields := m.Defs[i].Fields
		ordered := make([]render.Field, 0, len(fields))
		for _, f := range fields {
			if !f.Nullable {
				ordered = append(ordered, f)
			}
		}
		for _, f := range fields {
			if f.Nullable {
				ordered = append(ordered, f)
			}
		}
		m.Defs[i].Fields = ordered
	}

	m.Extra["NeedsOptional"] = false
	m.Extra["NeedsUnion"] = false
	for _, def := range m.Defs {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "Optional[") {
				m.Extra["NeedsOptional"] = true
			}
			if strings.Contains(f.Type, "Union[") {
				m.Extra["NeedsUnion"] = true
			}
		}
	}
	for _, tl := range m.TopLevels {
		if strings.Contains(tl.Type, "Optional[") {
			m.Extra["NeedsOptional"] = true
		}
		if strings.Contains(tl.Type, "Union[") {
			m.Extra["NeedsUnion"] = true
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "python.py.tmpl", m); err != nil {
		return nil, errors.Errorf("executing Python template: %w", err)
	}
	return buf.Bytes(), nil
}

type writer struct{}

func (writer) Primitive(k typegraph.Kind) string {
	switch k {
	case typegraph.KindBool:
		return "bool"
	case typegraph.KindInteger:
		return "int"
	case typegraph.KindDouble:
		return "float"
	case typegraph.KindString:
		return "str"
	case typegraph.KindNull:
		return "None"
	default:
		return "Any"
	}
}

func (writer) Array(elem string) string     { return "list[" + elem + "]" }
func (writer) Map(value string) string      { return "dict[str, " + value + "]" }
func (writer) Ref(name string) string       { return "'" + name + "'" }
func (writer) Optional(inner string) string { return "Optional[" + inner + "]" }

func (writer) Union(name string, members []string) string {
	return "Union[" + strings.Join(members, ", ") + "]"
}

// snakeCase legalizes a proposal into a snake_case identifier.
func snakeCase(proposal string) string {
	words := naming.SplitWords(proposal)
	if len(words) == 0 {
		words = []string{"empty"}
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	s := strings.Join(words, "_")
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

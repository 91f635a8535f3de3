// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package golang renders a type graph as Go struct definitions.
package golang

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/quicktype/quicktype/internal/naming"
	"github.com/quicktype/quicktype/internal/render"
	"github.com/quicktype/quicktype/internal/typegraph"
)

//go:embed golang.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "golang.go.tmpl"))

func init() {
	render.Register(&Language{})
}

// Language emits Go structs with json tags; nullable properties become
// pointers with omitempty.
type Language struct{}

func (l *Language) Name() string          { return "go" }
func (l *Language) DisplayName() string   { return "Go" }
func (l *Language) FileExtension() string { return ".go" }
func (l *Language) EditorMode() string    { return "golang" }

func (l *Language) ReservedWords() []string {
	return []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var",
		// Predeclared identifiers that would shadow badly in generated code.
		"any", "bool", "byte", "error", "float64", "int", "int64",
		"string", "true", "false", "nil",
	}
}

func (l *Language) Styles() render.Styles {
	pascal := naming.Identifier{Style: naming.UpperCamel, Legalize: legalize}
	return render.Styles{
		TypeName: pascal,
		TopLevel: pascal,
		Property: pascal,
	}
}

func (l *Language) Types() render.TypeWriter { return writer{} }

func (l *Language) EnrichField(f *render.Field) {
	tag := f.Key
	if f.Nullable {
		tag += ",omitempty"
		f.Type = "*" + f.Type
	}
	f.Tag = "`json:\"" + tag + "\"`"
}

func (l *Language) Render(m *render.Model) ([]byte, error) {
	if _, ok := m.Extra["Package"]; !ok {
		m.Extra["Package"] = "model"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "golang.go.tmpl", m); err != nil {
		return nil, errors.Errorf("executing Go template: %w", err)
	}
	return buf.Bytes(), nil
}

type writer struct{}

func (writer) Primitive(k typegraph.Kind) string {
	switch k {
	case typegraph.KindBool:
		return "bool"
	case typegraph.KindInteger:
		return "int64"
	case typegraph.KindDouble:
		return "float64"
	case typegraph.KindString:
		return "string"
	default:
		// Null, Nothing, and anything unobserved carry no structure.
		return "any"
	}
}

func (writer) Array(elem string) string     { return "[]" + elem }
func (writer) Map(value string) string      { return "map[string]" + value }
func (writer) Ref(name string) string       { return name }
func (writer) Optional(inner string) string { return "*" + inner }

// Go has no union syntax; tagged unions degrade to any.
func (writer) Union(name string, members []string) string { return "any" }

// legalize is UpperCamel with common Go acronyms fully uppercased.
func legalize(proposal string) string {
	acronyms := map[string]string{
		"id": "ID", "url": "URL", "http": "HTTP", "api": "API",
		"json": "JSON", "xml": "XML", "sql": "SQL", "html": "HTML",
		"ip": "IP", "uri": "URI", "uuid": "UUID",
	}

	words := naming.SplitWords(proposal)
	if len(words) == 0 {
		words = []string{"empty"}
	}

	var sb strings.Builder
	for _, w := range words {
		lower := strings.ToLower(w)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(strings.ToLower(w[size:]))
	}

	s := sb.String()
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

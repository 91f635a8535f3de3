// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package typescript renders a type graph as TypeScript interfaces.
package typescript

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

//go:embed typescript.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "typescript.ts.tmpl"))

func init() {
	render.Register(&Language{})
}

// Language emits exported interfaces; nullable properties become optional
// members that also accept null.
type Language struct{}

func (l *Language) Name() string          { return "typescript" }
func (l *Language) DisplayName() string   { return "TypeScript" }
func (l *Language) FileExtension() string { return ".ts" }
func (l *Language) EditorMode() string    { return "typescript" }

func (l *Language) ReservedWords() []string {
	return []string{
		"break", "case", "catch", "class", "const", "continue", "debugger",
		"default", "delete", "do", "else", "enum", "export", "extends",
		"false", "finally", "for", "function", "if", "import", "in",
		"instanceof", "new", "null", "return", "super", "switch", "this",
		"throw", "true", "try", "typeof", "var", "void", "while", "with",
		"any", "boolean", "number", "string", "object", "undefined",
	}
}

func (l *Language) Styles() render.Styles {
	return render.Styles{
		TypeName: naming.Identifier{Style: naming.UpperCamel},
		TopLevel: naming.Identifier{Style: naming.UpperCamel},
		Property: naming.Identifier{Style: naming.LowerCamel},
	}
}

func (l *Language) Types() render.TypeWriter { return writer{} }

func (l *Language) EnrichField(f *render.Field) {
	// Interface members use the original JSON key, quoted when it is not
	// a legal identifier; the naming engine's result is kept for languages
	// that cannot do that, but TypeScript can always round-trip the key.
	f.Name = memberName(f.Key)
	if f.Nullable {
		f.Name += "?"
		f.Type += " | null"
	}
}

func (l *Language) Render(m *render.Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "typescript.ts.tmpl", m); err != nil {
		return nil, errors.Errorf("executing TypeScript template: %w", err)
	}
	return buf.Bytes(), nil
}

type writer struct{}

func (writer) Primitive(k typegraph.Kind) string {
	switch k {
	case typegraph.KindBool:
		return "boolean"
	case typegraph.KindInteger, typegraph.KindDouble:
		return "number"
	case typegraph.KindString:
		return "string"
	case typegraph.KindNull:
		return "null"
	default:
		return "any"
	}
}

func (writer) Array(elem string) string {
	if strings.ContainsAny(elem, " |") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}

func (writer) Map(value string) string      { return "{ [key: string]: " + value + " }" }
func (writer) Ref(name string) string       { return name }
func (writer) Optional(inner string) string { return inner + " | null" }

func (writer) Union(name string, members []string) string {
	return strings.Join(members, " | ")
}

// memberName quotes a JSON key when it is not a legal identifier.
func memberName(key string) string {
	if key == "" {
		return `""`
	}
	for i, r := range key {
		legal := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9')
		if !legal {
			return `"` + key + `"`
		}
	}
	return key
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktype/quicktype/internal/naming"
	"github.com/quicktype/quicktype/internal/render"
	_ "github.com/quicktype/quicktype/internal/render/golang"
	"github.com/quicktype/quicktype/internal/samples"
	"github.com/quicktype/quicktype/internal/typegraph"
)

// fakeLang is a minimal backend with a controlled reserved-word list.
type fakeLang struct {
	reserved []string
}

func (f *fakeLang) Name() string             { return "fake" }
func (f *fakeLang) DisplayName() string      { return "Fake" }
func (f *fakeLang) FileExtension() string    { return ".fake" }
func (f *fakeLang) EditorMode() string       { return "text" }
func (f *fakeLang) ReservedWords() []string  { return f.reserved }
func (f *fakeLang) EnrichField(*render.Field) {}

func (f *fakeLang) Styles() render.Styles {
	return render.Styles{
		TypeName: naming.Identifier{Style: naming.UpperCamel},
		TopLevel: naming.Identifier{Style: naming.UpperCamel},
		Property: naming.Identifier{Style: naming.LowerCamel},
	}
}

func (f *fakeLang) Types() render.TypeWriter { return fakeWriter{} }

func (f *fakeLang) Render(m *render.Model) ([]byte, error) {
	var sb strings.Builder
	for _, def := range m.Defs {
		sb.WriteString(def.Name + "{")
		for _, fl := range def.Fields {
			sb.WriteString(fl.Name + ":" + fl.Type + ";")
		}
		sb.WriteString("}\n")
	}
	for _, tl := range m.TopLevels {
		sb.WriteString(tl.Name + "=" + tl.Type + "\n")
	}
	return []byte(sb.String()), nil
}

type fakeWriter struct{}

func (fakeWriter) Primitive(k typegraph.Kind) string {
	switch k {
	case typegraph.KindBool:
		return "bool"
	case typegraph.KindInteger:
		return "int"
	case typegraph.KindDouble:
		return "double"
	case typegraph.KindString:
		return "str"
	case typegraph.KindNull:
		return "null"
	default:
		return "any"
	}
}
func (fakeWriter) Array(e string) string    { return "[" + e + "]" }
func (fakeWriter) Map(v string) string      { return "{" + v + "}" }
func (fakeWriter) Ref(n string) string      { return n }
func (fakeWriter) Optional(i string) string { return i + "?" }
func (fakeWriter) Union(n string, members []string) string {
	return "(" + strings.Join(members, "|") + ")"
}

func personGraph(t *testing.T) *typegraph.Graph {
	t.Helper()
	g := typegraph.NewGraph()
	for _, src := range []string{`{"id": 1}`, `{"id": 2, "name": "x"}`} {
		v, err := samples.ParseJSON([]byte(src))
		require.NoError(t, err)
		g.Fold("Person", v)
	}
	return g
}

func TestPrepare_PersonScenario(t *testing.T) {
	lang := &fakeLang{reserved: []string{"class", "id"}}
	m, err := render.Prepare(personGraph(t), lang)
	require.NoError(t, err)

	require.Len(t, m.Defs, 1)
	def := m.Defs[0]
	assert.Equal(t, "Person", def.Name)

	require.Len(t, def.Fields, 2)
	assert.Equal(t, "id_", def.Fields[0].Name, "reserved word forces an escaped identifier")
	assert.Equal(t, "int", def.Fields[0].Type)
	assert.False(t, def.Fields[0].Nullable)

	assert.Equal(t, "name", def.Fields[1].Name)
	assert.Equal(t, "str", def.Fields[1].Type)
	assert.True(t, def.Fields[1].Nullable, "property absent in one sample is nullable")

	require.Len(t, m.TopLevels, 1)
	assert.Equal(t, "Person", m.TopLevels[0].Name)
	assert.True(t, m.TopLevels[0].IsDef)
}

func TestPrepare_DistinctRootsKeepDistinctNames(t *testing.T) {
	g := typegraph.NewGraph()
	for _, root := range []string{"TopLevelA", "TopLevelB"} {
		v, err := samples.ParseJSON([]byte(`{"x": 1}`))
		require.NoError(t, err)
		g.Fold(root, v)
	}

	m, err := render.Prepare(g, &fakeLang{})
	require.NoError(t, err)

	require.Len(t, m.Defs, 2)
	assert.Equal(t, "TopLevelA", m.Defs[0].Name)
	assert.Equal(t, "TopLevelB", m.Defs[1].Name)
	assert.NotEqual(t, m.Defs[0].Name, m.Defs[1].Name)
}

func TestPrepare_CollidingClassNames(t *testing.T) {
	g := typegraph.NewGraph()
	// Both nested objects propose the name "value".
	v, err := samples.ParseJSON([]byte(`{"value": {"a": 1}, "Value": {"b": 2}}`))
	require.NoError(t, err)
	g.Fold("Wrapper", v)

	m, err := render.Prepare(g, &fakeLang{})
	require.NoError(t, err)

	require.Len(t, m.Defs, 3)
	seen := map[string]bool{}
	for _, def := range m.Defs {
		assert.False(t, seen[def.Name], "duplicate type name %q", def.Name)
		seen[def.Name] = true
	}
}

func TestPrepare_ArrayRootDerivesTopLevelName(t *testing.T) {
	g := typegraph.NewGraph()
	v, err := samples.ParseJSON([]byte(`[{"id": 1}]`))
	require.NoError(t, err)
	g.Fold("persons", v)

	m, err := render.Prepare(g, &fakeLang{})
	require.NoError(t, err)

	require.Len(t, m.Defs, 1)
	assert.Equal(t, "Person", m.Defs[0].Name, "element class is named from the singular")

	require.Len(t, m.TopLevels, 1)
	assert.Equal(t, "PersonList", m.TopLevels[0].Name)
	assert.Equal(t, "[Person]", m.TopLevels[0].Type)
	assert.False(t, m.TopLevels[0].IsDef)
}

func TestPrepare_Deterministic(t *testing.T) {
	build := func() ([]byte, error) {
		return render.Generate(personGraph(t), &fakeLang{reserved: []string{"id"}})
	}
	a, err := build()
	require.NoError(t, err)
	b, err := build()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "name table must be byte-identical across runs")
}

func TestRegistry(t *testing.T) {
	avail := render.Available()
	assert.Contains(t, avail, "go")

	lang, err := render.Get("go")
	require.NoError(t, err)
	assert.Equal(t, "Go", lang.DisplayName())

	_, err = render.Get("cobol")
	assert.Error(t, err)
}

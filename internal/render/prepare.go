// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package render

import (
	"gitlab.com/tozd/go/errors"

	"github.com/quicktype/quicktype/internal/naming"
	"github.com/quicktype/quicktype/internal/typegraph"
)

// Model is the complete input passed to a backend's Render.
type Model struct {
	TopLevels []TopLevel     // one per declared root, in declaration order
	Defs      []TypeDef      // class definitions in discovery order
	Extra     map[string]any // backend-specific template data
}

// TopLevel is one declared root with its rendered type string.
type TopLevel struct {
	Name  string // resolved top-level identifier
	Type  string // fully resolved target type string
	IsDef bool   // true when the root is a class emitted in Defs under the same name
}

// TypeDef is one named class definition.
type TypeDef struct {
	Name   string  // resolved type identifier
	Fields []Field // ordered by discovery
}

// Field is a single class property.
type Field struct {
	Name     string // resolved property identifier (may be mutated by EnrichField)
	Key      string // original JSON key, for serialization annotations
	Type     string // fully resolved target type string
	Nullable bool   // true when the property is a simple nullable
	Tag      string // language-specific annotation, e.g. a json struct tag
}

// Prepare runs the naming engine for one backend over a built graph and
// walks the graph into a template-ready model. Each call owns its own
// namespace forest and name table, so concurrent calls with independent
// inputs need no synchronization.
func Prepare(g *typegraph.Graph, lang Language) (*Model, error) {
	if !g.Built() {
		g.Build()
	}

	styles := lang.Styles()
	global := naming.NewNamespace("global", lang.ReservedWords()...)

	// One naming request per class and per named (non-optional) union,
	// in graph discovery order.
	classNames := make(map[*typegraph.Class]*naming.Named, len(g.Classes))
	for _, c := range g.Classes {
		classNames[c] = global.Name(candidate(c.Names, "type"), styles.TypeName)
	}
	unionNames := make(map[*typegraph.Union]*naming.Named)
	for _, u := range g.Unions {
		if _, optional := u.Nullable(); optional {
			continue
		}
		unionNames[u] = global.Name(candidate(u.Names, "union"), styles.TypeName)
	}

	// Top-level requests. A root that is itself a named entity shares that
	// entity's name; other roots get their own request, derived from the
	// referenced entity's name when there is one underneath.
	type rootName struct {
		named  *naming.Named
		suffix string // derived-name suffix, e.g. "List" for array roots
	}
	rootNames := make([]rootName, len(g.Roots))
	for i, r := range g.Roots {
		if n, ok := entityName(r.Type, classNames, unionNames); ok {
			rootNames[i] = rootName{named: n}
			continue
		}
		if dep, suffix, ok := derivedRoot(r.Type, classNames, unionNames); ok {
			rootNames[i] = rootName{named: global.NameDerived(styles.TopLevel, func(depNames []string) string {
				return depNames[0] + suffix
			}, dep)}
			continue
		}
		rootNames[i] = rootName{named: global.Name(r.Name, styles.TopLevel)}
	}

	// Each class owns a child namespace for its properties.
	propNames := make(map[*typegraph.Class][]*naming.Named, len(g.Classes))
	for _, c := range g.Classes {
		ns := global.Child("properties")
		named := make([]*naming.Named, len(c.Properties))
		for i, p := range c.Properties {
			named[i] = ns.Name(p.Name, styles.Property)
		}
		propNames[c] = named
	}

	table, err := naming.Assign(global)
	if err != nil {
		return nil, errors.Errorf("assigning names: %w", err)
	}

	w := lang.Types()
	var typeString func(t typegraph.Type) string
	typeString = func(t typegraph.Type) string {
		switch t.Kind {
		case typegraph.KindArray:
			return w.Array(typeString(*t.Elem))
		case typegraph.KindMap:
			return w.Map(typeString(*t.Elem))
		case typegraph.KindClass:
			return w.Ref(table.Get(classNames[t.Class]))
		case typegraph.KindUnion:
			if inner, optional := t.Union.Nullable(); optional {
				return w.Optional(typeString(inner))
			}
			members := make([]string, len(t.Union.Members))
			for i, m := range t.Union.Members {
				members[i] = typeString(m)
			}
			return w.Union(table.Get(unionNames[t.Union]), members)
		default:
			return w.Primitive(t.Kind)
		}
	}

	m := &Model{Extra: make(map[string]any)}
	for _, c := range g.Classes {
		def := TypeDef{Name: table.Get(classNames[c])}
		for i, p := range c.Properties {
			t := p.Type
			nullable := false
			if t.Kind == typegraph.KindUnion {
				if inner, optional := t.Union.Nullable(); optional {
					t = inner
					nullable = true
				}
			}
			f := Field{
				Name:     table.Get(propNames[c][i]),
				Key:      p.Name,
				Type:     typeString(t),
				Nullable: nullable,
			}
			lang.EnrichField(&f)
			def.Fields = append(def.Fields, f)
		}
		m.Defs = append(m.Defs, def)
	}
	for i, r := range g.Roots {
		m.TopLevels = append(m.TopLevels, TopLevel{
			Name:  table.Get(rootNames[i].named),
			Type:  typeString(r.Type),
			IsDef: r.Type.Kind == typegraph.KindClass,
		})
	}
	return m, nil
}

// Generate prepares a model for the backend and renders it.
func Generate(g *typegraph.Graph, lang Language) ([]byte, error) {
	m, err := Prepare(g, lang)
	if err != nil {
		return nil, err
	}
	return lang.Render(m)
}

// candidate picks the first observed label, falling back when the entity
// was never labeled.
func candidate(names []string, fallback string) string {
	if len(names) > 0 && names[0] != "" {
		return names[0]
	}
	return fallback
}

// entityName returns the naming request of t when t is itself a named
// class or union.
func entityName(t typegraph.Type, classes map[*typegraph.Class]*naming.Named, unions map[*typegraph.Union]*naming.Named) (*naming.Named, bool) {
	switch t.Kind {
	case typegraph.KindClass:
		return classes[t.Class], true
	case typegraph.KindUnion:
		n, ok := unions[t.Union]
		return n, ok
	}
	return nil, false
}

// derivedRoot finds a named entity underneath an array or map root, so the
// top-level name can be derived from it ("PersonList" for an array of
// Person).
func derivedRoot(t typegraph.Type, classes map[*typegraph.Class]*naming.Named, unions map[*typegraph.Union]*naming.Named) (*naming.Named, string, bool) {
	switch t.Kind {
	case typegraph.KindArray:
		if n, ok := entityName(*t.Elem, classes, unions); ok {
			return n, "List", true
		}
	case typegraph.KindMap:
		if n, ok := entityName(*t.Elem, classes, unions); ok {
			return n, "Map", true
		}
	}
	return nil, "", false
}

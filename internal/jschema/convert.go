// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package jschema

import (
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/quicktype/quicktype/internal/typegraph"
)

// Convert builds a type from the schema and folds it into the graph under
// rootName. Each $defs entry becomes one class entity shared by every $ref
// to it, so recursive schemas come out as self-referential classes rather
// than unbounded copies.
func Convert(g *typegraph.Graph, rootName string, schema *jsonschema.Schema, keyOrder map[string][]string) error {
	c := &converter{
		root:       schema,
		keyOrder:   keyOrder,
		defs:       make(map[string]typegraph.Type),
		converting: make(map[string]bool),
	}
	t, err := c.typeOf(schema, rootName, "")
	if err != nil {
		return err
	}
	g.SetRoot(rootName, t)
	return nil
}

type converter struct {
	root       *jsonschema.Schema
	keyOrder   map[string][]string
	defs       map[string]typegraph.Type
	converting map[string]bool
}

func (c *converter) typeOf(s *jsonschema.Schema, name, path string) (typegraph.Type, error) {
	if s == nil {
		return typegraph.NothingType, nil
	}
	if s.Ref != "" {
		return c.refType(s.Ref)
	}

	// Multiple primitive types unify into a union.
	if len(s.Types) > 0 {
		t := typegraph.NothingType
		for _, tn := range s.Types {
			t = typegraph.Unify(t, primitiveFor(tn))
		}
		return t, nil
	}

	// anyOf/oneOf members unify the same way samples do.
	if len(s.AnyOf)+len(s.OneOf) > 0 {
		t := typegraph.NothingType
		for _, alt := range s.AnyOf {
			at, err := c.typeOf(alt, name, childPath(path, "anyOf"))
			if err != nil {
				return typegraph.Type{}, err
			}
			t = typegraph.Unify(t, at)
		}
		for _, alt := range s.OneOf {
			at, err := c.typeOf(alt, name, childPath(path, "oneOf"))
			if err != nil {
				return typegraph.Type{}, err
			}
			t = typegraph.Unify(t, at)
		}
		return t, nil
	}

	switch {
	case s.Type == "array":
		elem, err := c.typeOf(s.Items, typegraph.Singular(name), childPath(path, "items"))
		if err != nil {
			return typegraph.Type{}, err
		}
		return typegraph.ArrayOf(elem), nil

	case len(s.Properties) > 0 || s.Type == "object":
		if len(s.Properties) == 0 && s.AdditionalProperties != nil {
			value, err := c.typeOf(s.AdditionalProperties, name, childPath(path, "additionalProperties"))
			if err != nil {
				return typegraph.Type{}, err
			}
			return typegraph.MapOf(value), nil
		}
		class := typegraph.NewClass(name)
		if err := c.fillClass(class, s, path); err != nil {
			return typegraph.Type{}, err
		}
		return typegraph.ClassOf(class), nil

	case s.Type != "":
		return primitiveFor(s.Type), nil

	case len(s.Enum) > 0:
		return typegraph.StringType, nil

	default:
		return typegraph.NothingType, nil
	}
}

func (c *converter) fillClass(class *typegraph.Class, s *jsonschema.Schema, path string) error {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	orderPath := childPath(path, "properties")
	for _, propName := range c.orderedKeys(orderPath, s.Properties) {
		propPath := orderPath + "." + propName
		t, err := c.typeOf(s.Properties[propName], propName, propPath)
		if err != nil {
			return err
		}
		if !required[propName] {
			t = typegraph.MakeNullable(t)
		}
		class.Set(propName, t)
	}
	return nil
}

// refType resolves an internal $ref, converting the target definition the
// first time it is seen. Object definitions register their class entity
// before their properties convert, which is what lets a definition
// reference itself.
func (c *converter) refType(ref string) (typegraph.Type, error) {
	name := refDefName(ref)
	if name == "" {
		return typegraph.Type{}, errors.Errorf("unsupported $ref %q", ref)
	}
	if t, ok := c.defs[name]; ok {
		return t, nil
	}
	s, ok := c.root.Defs[name]
	if !ok {
		return typegraph.Type{}, errors.Errorf("$ref %q has no matching $defs entry", ref)
	}

	defPath := "$defs." + name
	if len(s.Properties) > 0 || (s.Type == "object" && s.AdditionalProperties == nil) {
		class := typegraph.NewClass(name)
		t := typegraph.ClassOf(class)
		c.defs[name] = t
		if err := c.fillClass(class, s, defPath); err != nil {
			return typegraph.Type{}, err
		}
		return t, nil
	}

	// Non-object definition. A ref cycle through one of these carries no
	// structure to hang a placeholder on, so it degrades to Nothing.
	if c.converting[name] {
		return typegraph.NothingType, nil
	}
	c.converting[name] = true
	defer delete(c.converting, name)

	t, err := c.typeOf(s, name, defPath)
	if err != nil {
		return typegraph.Type{}, err
	}
	c.defs[name] = t
	return t, nil
}

func (c *converter) orderedKeys(orderPath string, props map[string]*jsonschema.Schema) []string {
	if order, ok := c.keyOrder[orderPath]; ok {
		var result []string
		for _, key := range order {
			if _, exists := props[key]; exists {
				result = append(result, key)
			}
		}
		if len(result) == len(props) {
			return result
		}
	}
	// Sorted fallback keeps output deterministic when the source order is
	// unavailable.
	keys := make([]string, 0, len(props))
	for name := range props {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

func primitiveFor(typeName string) typegraph.Type {
	switch typeName {
	case "null":
		return typegraph.NullType
	case "boolean":
		return typegraph.BoolType
	case "integer":
		return typegraph.IntegerType
	case "number":
		return typegraph.DoubleType
	case "string":
		return typegraph.StringType
	default:
		return typegraph.NothingType
	}
}

// childPath extends a key-order path the same way the extractors build
// theirs, so lookups stay aligned when descending through intermediate
// keywords like "items".
func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// refDefName extracts the definition name from an internal $ref.
func refDefName(ref string) string {
	path, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return ""
	}
	switch {
	case strings.HasPrefix(path, "$defs/"):
		return strings.TrimPrefix(path, "$defs/")
	case strings.HasPrefix(path, "definitions/"):
		return strings.TrimPrefix(path, "definitions/")
	}
	return ""
}

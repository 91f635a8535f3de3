// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package typegraph holds the intermediate type model inferred from sample
// documents: a closed set of type variants, class and union entities, and
// the unification algorithm that merges independently observed shapes.
package typegraph

// Kind identifies the variant held by a Type.
type Kind int

const (
	KindNothing Kind = iota // no information yet; identity for unification
	KindNull
	KindBool
	KindInteger
	KindDouble
	KindString
	KindArray
	KindMap
	KindClass
	KindUnion
)

// Type is a tagged variant. Primitive kinds carry no payload; Array and Map
// carry an element type; Class and Union reference a shared entity whose
// pointer identity is its entity identity.
type Type struct {
	Kind  Kind
	Elem  *Type  // element type for Array, value type for Map
	Class *Class // set when Kind == KindClass
	Union *Union // set when Kind == KindUnion
}

var (
	NothingType = Type{Kind: KindNothing}
	NullType    = Type{Kind: KindNull}
	BoolType    = Type{Kind: KindBool}
	IntegerType = Type{Kind: KindInteger}
	DoubleType  = Type{Kind: KindDouble}
	StringType  = Type{Kind: KindString}
)

// ArrayOf returns an array type with the given element type.
func ArrayOf(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

// MapOf returns a string-keyed map type with the given value type.
func MapOf(value Type) Type {
	return Type{Kind: KindMap, Elem: &value}
}

// ClassOf wraps a class entity in a Type.
func ClassOf(c *Class) Type {
	return Type{Kind: KindClass, Class: c}
}

// Property is one class member, in discovery order.
type Property struct {
	Name string
	Type Type
}

// Class is a named-entity object shape. Two classes are the same entity
// only when they are the same pointer; structurally identical classes at
// different declaration sites stay distinct.
type Class struct {
	Properties []Property
	Names      []string // every label this shape was observed under

	index map[string]int
}

// NewClass creates an empty class with the given name candidates.
func NewClass(names ...string) *Class {
	return &Class{Names: names, index: make(map[string]int)}
}

// Lookup returns the type of the named property.
func (c *Class) Lookup(name string) (Type, bool) {
	i, ok := c.index[name]
	if !ok {
		return Type{}, false
	}
	return c.Properties[i].Type, true
}

// Set adds a property or replaces the type of an existing one,
// preserving discovery order.
func (c *Class) Set(name string, t Type) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.Properties[i].Type = t
		return
	}
	c.index[name] = len(c.Properties)
	c.Properties = append(c.Properties, Property{Name: name, Type: t})
}

// AddNames appends name candidates, skipping duplicates.
func (c *Class) AddNames(names ...string) {
	for _, n := range names {
		seen := false
		for _, have := range c.Names {
			if have == n {
				seen = true
				break
			}
		}
		if !seen {
			c.Names = append(c.Names, n)
		}
	}
}

// Union is a flattened set of member types: it never contains another
// union and never two structurally equal members.
type Union struct {
	Members []Type
	Names   []string // labels from the slots this union was observed at
}

// HasNull reports whether Null is a member.
func (u *Union) HasNull() bool {
	for _, m := range u.Members {
		if m.Kind == KindNull {
			return true
		}
	}
	return false
}

// Nullable reports whether the union is the canonical optional shape:
// exactly one non-null member. It returns that member when so.
func (u *Union) Nullable() (Type, bool) {
	var nonNull []Type
	for _, m := range u.Members {
		if m.Kind != KindNull {
			nonNull = append(nonNull, m)
		}
	}
	if len(nonNull) == 1 && u.HasNull() {
		return nonNull[0], true
	}
	return Type{}, false
}

// AddNames appends name candidates, skipping duplicates.
func (u *Union) AddNames(names ...string) {
	for _, n := range names {
		seen := false
		for _, have := range u.Names {
			if have == n {
				seen = true
				break
			}
		}
		if !seen {
			u.Names = append(u.Names, n)
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package typegraph

// Unify merges two independently observed types for the same logical slot
// into one type. It is total: any two types unify to something, worst case
// a union of everything observed. Nothing is the identity element, Integer
// widens to Double, arrays and maps unify element-wise, classes merge with
// missing-property nullability, and all remaining combinations form a
// flattened union.
//
// Class and union operands keep their entity identity: merging folds the
// right operand into the left entity, which is what keys class identity to
// the declaration slot during sample folding.
func Unify(a, b Type) Type {
	if a.Kind == KindNothing {
		return b
	}
	if b.Kind == KindNothing {
		return a
	}

	if a.Kind == b.Kind {
		switch a.Kind {
		case KindNull, KindBool, KindInteger, KindDouble, KindString:
			return a
		case KindArray:
			return ArrayOf(Unify(*a.Elem, *b.Elem))
		case KindMap:
			return MapOf(Unify(*a.Elem, *b.Elem))
		case KindClass:
			return ClassOf(mergeClasses(a.Class, b.Class))
		}
	}

	// Numeric widening, never narrowing.
	if (a.Kind == KindInteger && b.Kind == KindDouble) || (a.Kind == KindDouble && b.Kind == KindInteger) {
		return DoubleType
	}

	return unionOf(a, b)
}

// MakeNullable wraps t in the canonical optional representation,
// a union of t and Null. Null and already-nullable types pass through.
func MakeNullable(t Type) Type {
	switch t.Kind {
	case KindNothing, KindNull:
		return NullType
	case KindUnion:
		if t.Union.HasNull() {
			return t
		}
		u := &Union{Members: append(append([]Type{}, t.Union.Members...), NullType)}
		u.AddNames(t.Union.Names...)
		return Type{Kind: KindUnion, Union: u}
	default:
		return Type{Kind: KindUnion, Union: &Union{Members: []Type{t, NullType}}}
	}
}

// mergeClasses folds b into a. Properties present in only one operand
// become nullable in the merged shape, modeling absence across samples.
func mergeClasses(a, b *Class) *Class {
	if a == b {
		return a
	}
	for i := range a.Properties {
		name := a.Properties[i].Name
		if _, ok := b.Lookup(name); !ok {
			a.Properties[i].Type = MakeNullable(a.Properties[i].Type)
		}
	}
	for _, p := range b.Properties {
		if have, ok := a.Lookup(p.Name); ok {
			a.Set(p.Name, Unify(have, p.Type))
		} else {
			a.Set(p.Name, MakeNullable(p.Type))
		}
	}
	a.AddNames(b.Names...)
	return a
}

// unionOf combines two types into a flattened union. When an operand is
// already a union its entity is reused so the slot keeps a stable identity.
func unionOf(a, b Type) Type {
	var u *Union
	var pending []Type

	for _, t := range []Type{a, b} {
		switch {
		case t.Kind != KindUnion:
			pending = append(pending, t)
		case u == nil:
			u = t.Union
		case u != t.Union:
			pending = append(pending, t.Union.Members...)
			u.AddNames(t.Union.Names...)
		}
	}
	if u == nil {
		u = &Union{}
	}
	for _, m := range pending {
		absorb(u, m)
	}
	return Type{Kind: KindUnion, Union: u}
}

// absorb adds a non-union member to u, first trying to merge it with an
// existing member of a compatible kind so the union stays minimal.
func absorb(u *Union, t Type) {
	for i, m := range u.Members {
		switch {
		case m.Kind == t.Kind && (m.Kind == KindArray || m.Kind == KindMap || m.Kind == KindClass):
			u.Members[i] = Unify(m, t)
			return
		case (m.Kind == KindInteger && t.Kind == KindDouble) || (m.Kind == KindDouble && t.Kind == KindInteger):
			u.Members[i] = DoubleType
			return
		case Equal(m, t):
			return
		}
	}
	u.Members = append(u.Members, t)
}

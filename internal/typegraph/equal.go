// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package typegraph

// Equal reports structural equality of two types. Class properties are
// compared as a name-keyed set, so discovery order does not matter, and
// union members are compared as a set. A visited-pair guard makes the
// comparison terminate on self-referential classes.
func Equal(a, b Type) bool {
	return equalTypes(a, b, make(map[pair]bool))
}

type pair struct {
	a, b any
}

func equalTypes(a, b Type, visited map[pair]bool) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindArray, KindMap:
		return equalTypes(*a.Elem, *b.Elem, visited)
	case KindClass:
		return equalClasses(a.Class, b.Class, visited)
	case KindUnion:
		return equalUnions(a.Union, b.Union, visited)
	default:
		return true
	}
}

func equalClasses(a, b *Class, visited map[pair]bool) bool {
	if a == b {
		return true
	}
	p := pair{a, b}
	if visited[p] {
		// Already comparing this pair higher up the stack; assume equal
		// here and let the outer comparison decide.
		return true
	}
	visited[p] = true

	if len(a.Properties) != len(b.Properties) {
		return false
	}
	for _, prop := range a.Properties {
		other, ok := b.Lookup(prop.Name)
		if !ok || !equalTypes(prop.Type, other, visited) {
			return false
		}
	}
	return true
}

func equalUnions(a, b *Union, visited map[pair]bool) bool {
	if a == b {
		return true
	}
	p := pair{a, b}
	if visited[p] {
		return true
	}
	visited[p] = true

	if len(a.Members) != len(b.Members) {
		return false
	}
	matched := make([]bool, len(b.Members))
	for _, m := range a.Members {
		found := false
		for i, other := range b.Members {
			if !matched[i] && equalTypes(m, other, visited) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

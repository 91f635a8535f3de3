// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package typegraph

import "github.com/quicktype/quicktype/internal/samples"

// Root is one user-declared top-level type.
type Root struct {
	Name string
	Type Type
}

// Graph is the set of class and union entities reachable from a set of
// named top-level roots. Samples are folded in with Fold; Build then
// freezes the graph and collects its entities in stable discovery order.
type Graph struct {
	Roots   []Root
	Classes []*Class
	Unions  []*Union

	rootIndex map[string]int
	built     bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{rootIndex: make(map[string]int)}
}

// Fold infers a type from one sample value and unifies it into the named
// root, creating the root (seeded with Nothing) on first use.
func (g *Graph) Fold(rootName string, v samples.Value) {
	i := g.root(rootName)
	g.Roots[i].Type = Unify(g.Roots[i].Type, Infer(rootName, v))
}

// SetRoot unifies a prebuilt type into the named root. Used by schema
// ingestion, which constructs types directly instead of inferring them.
func (g *Graph) SetRoot(rootName string, t Type) {
	i := g.root(rootName)
	g.Roots[i].Type = Unify(g.Roots[i].Type, t)
}

func (g *Graph) root(name string) int {
	if i, ok := g.rootIndex[name]; ok {
		return i
	}
	g.rootIndex[name] = len(g.Roots)
	g.Roots = append(g.Roots, Root{Name: name, Type: NothingType})
	return len(g.Roots) - 1
}

// Built reports whether Build has run.
func (g *Graph) Built() bool {
	return g.built
}

// Build walks the roots depth-first and records every distinct class and
// union entity once, in discovery order. The graph must not be mutated
// afterwards; renderers and the naming engine rely on this order for
// deterministic output.
func (g *Graph) Build() {
	g.Classes = nil
	g.Unions = nil
	seenClasses := make(map[*Class]bool)
	seenUnions := make(map[*Union]bool)

	var walk func(t Type)
	walk = func(t Type) {
		switch t.Kind {
		case KindArray, KindMap:
			walk(*t.Elem)
		case KindClass:
			if seenClasses[t.Class] {
				return
			}
			seenClasses[t.Class] = true
			g.Classes = append(g.Classes, t.Class)
			for _, p := range t.Class.Properties {
				walk(p.Type)
			}
		case KindUnion:
			if seenUnions[t.Union] {
				return
			}
			seenUnions[t.Union] = true
			g.Unions = append(g.Unions, t.Union)
			for _, m := range t.Union.Members {
				walk(m)
			}
		}
	}
	for _, r := range g.Roots {
		walk(r.Type)
	}
	g.built = true
}

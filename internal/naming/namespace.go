// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

// Package naming assigns legal, unique, deterministic identifiers to every
// named entity of a type graph across the naming scopes of a target
// language. Scopes form a forest of namespaces with inherited forbidden
// sets; naming requests are resolved in dependency order.
package naming

// Namespace is one naming scope. It owns a set of naming requests and a
// forbidden set; children inherit the forbidden sets of their ancestors.
type Namespace struct {
	label     string
	parent    *Namespace
	forbidden map[string]struct{}
	members   []*Named
	children  []*Namespace
}

// NewNamespace creates a root namespace, typically the global scope seeded
// with a backend's reserved words.
func NewNamespace(label string, forbidden ...string) *Namespace {
	ns := &Namespace{label: label, forbidden: make(map[string]struct{})}
	ns.Forbid(forbidden...)
	return ns
}

// Child creates a nested namespace, such as the property scope of a class.
func (ns *Namespace) Child(label string, forbidden ...string) *Namespace {
	child := NewNamespace(label, forbidden...)
	child.parent = ns
	ns.children = append(ns.children, child)
	return child
}

// Forbid adds strings that no request in this namespace (or below it) may
// resolve to.
func (ns *Namespace) Forbid(names ...string) {
	for _, n := range names {
		ns.forbidden[n] = struct{}{}
	}
}

// Label returns the namespace's diagnostic label.
func (ns *Namespace) Label() string {
	return ns.label
}

func (ns *Namespace) isForbidden(s string) bool {
	for scope := ns; scope != nil; scope = scope.parent {
		if _, ok := scope.forbidden[s]; ok {
			return true
		}
	}
	return false
}

// Named is one unresolved naming obligation: a proposal, the policy that
// turns proposals into legal strings, and optionally the requests whose
// resolved names this one's proposal is derived from.
type Named struct {
	ns       *Namespace
	proposal string
	derive   func(depNames []string) string
	deps     []*Named
	namer    Namer
	count    int
}

// Name registers a request for a single identifier based on proposal.
func (ns *Namespace) Name(proposal string, namer Namer) *Named {
	n := &Named{ns: ns, proposal: proposal, namer: namer, count: 1}
	ns.members = append(ns.members, n)
	return n
}

// NameN registers a request for count related identifiers assigned
// simultaneously from one proposal.
func (ns *Namespace) NameN(proposal string, count int, namer Namer) *Named {
	n := &Named{ns: ns, proposal: proposal, namer: namer, count: count}
	ns.members = append(ns.members, n)
	return n
}

// NameDerived registers a request whose proposal is computed from the
// resolved names of other requests. It resolves only after all of deps.
func (ns *Namespace) NameDerived(namer Namer, derive func(depNames []string) string, deps ...*Named) *Named {
	n := &Named{ns: ns, derive: derive, deps: deps, namer: namer, count: 1}
	ns.members = append(ns.members, n)
	return n
}

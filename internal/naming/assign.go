// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package naming

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrDependencyCycle reports a cycle among naming requests. Legitimate
// dependency graphs are acyclic by construction, so hitting this is an
// internal invariant violation, not a user input error.
var ErrDependencyCycle = errors.Base("dependency cycle among naming requests")

// Table is the immutable result of an assignment pass: every request maps
// to the identifiers it was assigned.
type Table struct {
	names map[*Named][]string
}

// Get returns the resolved name of a single-name request.
func (t *Table) Get(n *Named) string {
	return t.names[n][0]
}

// GetAll returns all names of a multi-name request.
func (t *Table) GetAll(n *Named) []string {
	return t.names[n]
}

// Assign resolves every naming request in the given namespace forest and
// returns the completed name table.
//
// Requests are processed in dependency order, ties broken by declaration
// order, so the result is byte-identical across runs for the same forest.
// Within a namespace each resolved name is added to the forbidden context
// before the next sibling resolves, which makes uniqueness hold by
// construction.
func Assign(roots ...*Namespace) (*Table, error) {
	var all []*Named
	for _, root := range roots {
		collect(root, &all)
	}

	resolved := make(map[*Named][]string, len(all))
	assignedIn := make(map[*Namespace]map[string]struct{})

	taken := func(ns *Namespace, s string) bool {
		if ns.isForbidden(s) {
			return true
		}
		_, ok := assignedIn[ns][s]
		return ok
	}

	remaining := len(all)
	done := make(map[*Named]bool, len(all))
	for remaining > 0 {
		progress := false
		for _, n := range all {
			if done[n] || !depsDone(n, done) {
				continue
			}

			proposal := n.proposal
			if n.derive != nil {
				depNames := make([]string, len(n.deps))
				for i, dep := range n.deps {
					depNames[i] = resolved[dep][0]
				}
				proposal = n.derive(depNames)
			}

			names := n.namer.Name(proposal, n.count, func(s string) bool {
				return taken(n.ns, s)
			})
			resolved[n] = names
			if assignedIn[n.ns] == nil {
				assignedIn[n.ns] = make(map[string]struct{})
			}
			for _, s := range names {
				assignedIn[n.ns][s] = struct{}{}
			}

			done[n] = true
			remaining--
			progress = true
		}
		if !progress {
			var stuck []string
			for _, n := range all {
				if !done[n] {
					stuck = append(stuck, n.ns.Label())
				}
			}
			return nil, errors.Errorf("%w: unresolved requests in %s",
				ErrDependencyCycle, strings.Join(stuck, ", "))
		}
	}

	return &Table{names: resolved}, nil
}

func collect(ns *Namespace, all *[]*Named) {
	*all = append(*all, ns.members...)
	for _, child := range ns.children {
		collect(child, all)
	}
}

func depsDone(n *Named, done map[*Named]bool) bool {
	for _, dep := range n.deps {
		if !done[dep] {
			return false
		}
	}
	return true
}

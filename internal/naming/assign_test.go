// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_UniqueWithinNamespace(t *testing.T) {
	global := NewNamespace("global")
	id := Identifier{Style: UpperCamel}

	a := global.Name("person", id)
	b := global.Name("person", id)
	c := global.Name("Person", id)

	table, err := Assign(global)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, n := range []*Named{a, b, c} {
		s := table.Get(n)
		assert.False(t, names[s], "duplicate resolved name %q", s)
		names[s] = true
	}
	assert.Equal(t, "Person", table.Get(a))
}

func TestAssign_RespectsForbiddenWords(t *testing.T) {
	global := NewNamespace("global", "Person", "class")
	id := Identifier{Style: UpperCamel}

	n := global.Name("person", id)
	table, err := Assign(global)
	require.NoError(t, err)

	assert.Equal(t, "Person_", table.Get(n))
}

func TestAssign_ChildInheritsForbidden(t *testing.T) {
	global := NewNamespace("global", "id")
	props := global.Child("properties")
	lower := Identifier{Style: LowerCamel}

	n := props.Name("id", lower)
	table, err := Assign(global)
	require.NoError(t, err)

	assert.Equal(t, "id_", table.Get(n), "child namespaces inherit forbidden strings")
}

func TestAssign_SiblingNamespacesIndependent(t *testing.T) {
	global := NewNamespace("global")
	lower := Identifier{Style: LowerCamel}

	propsA := global.Child("properties")
	propsB := global.Child("properties")
	a := propsA.Name("x", lower)
	b := propsB.Name("x", lower)

	table, err := Assign(global)
	require.NoError(t, err)

	// Same resolved string is fine across sibling namespaces.
	assert.Equal(t, "x", table.Get(a))
	assert.Equal(t, "x", table.Get(b))
}

func TestAssign_DerivedNamesResolveAfterDependencies(t *testing.T) {
	global := NewNamespace("global")
	id := Identifier{Style: UpperCamel}

	classNamed := global.Name("person", id)
	topLevel := global.NameDerived(id, func(deps []string) string {
		return deps[0] + "List"
	}, classNamed)

	table, err := Assign(global)
	require.NoError(t, err)

	assert.Equal(t, "Person", table.Get(classNamed))
	assert.Equal(t, "PersonList", table.Get(topLevel))
}

func TestAssign_DerivedDeclaredBeforeDependency(t *testing.T) {
	global := NewNamespace("global")
	id := Identifier{Style: UpperCamel}

	// Declaration order is the reverse of dependency order.
	var classNamed *Named
	topLevel := global.NameDerived(id, func(deps []string) string {
		return deps[0] + "Map"
	})
	classNamed = global.Name("entry", id)
	topLevel.deps = append(topLevel.deps, classNamed)

	table, err := Assign(global)
	require.NoError(t, err)
	assert.Equal(t, "EntryMap", table.Get(topLevel))
}

func TestAssign_CycleIsInternalError(t *testing.T) {
	global := NewNamespace("global")
	id := Identifier{Style: UpperCamel}

	a := global.NameDerived(id, func(deps []string) string { return deps[0] })
	b := global.NameDerived(id, func(deps []string) string { return deps[0] }, a)
	a.deps = append(a.deps, b)

	_, err := Assign(global)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependencyCycle)
	assert.Contains(t, err.Error(), "global", "diagnostic names the stuck namespace")
}

func TestAssign_Deterministic(t *testing.T) {
	build := func() (*Namespace, []*Named) {
		global := NewNamespace("global", "type", "class")
		id := Identifier{Style: UpperCamel}
		lower := Identifier{Style: LowerCamel}

		var named []*Named
		named = append(named, global.Name("type", id))
		named = append(named, global.Name("Type", id))
		props := global.Child("properties")
		named = append(named, props.Name("class", lower))
		named = append(named, props.Name("class", lower))
		return global, named
	}

	globalA, namedA := build()
	tableA, err := Assign(globalA)
	require.NoError(t, err)

	globalB, namedB := build()
	tableB, err := Assign(globalB)
	require.NoError(t, err)

	for i := range namedA {
		assert.Equal(t, tableA.Get(namedA[i]), tableB.Get(namedB[i]),
			"request %d resolved differently across runs", i)
	}
}

func TestAssign_MultiName(t *testing.T) {
	global := NewNamespace("global")
	id := Identifier{Style: UpperCamel}

	n := global.NameN("variant", 2, id)
	single := global.Name("variant1", id)

	table, err := Assign(global)
	require.NoError(t, err)

	all := table.GetAll(n)
	require.Len(t, all, 2)
	assert.NotEqual(t, all[0], all[1])
	assert.NotContains(t, all, table.Get(single))
}
// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package typegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktype/quicktype/internal/samples"
)

func mustParse(t *testing.T, src string) samples.Value {
	t.Helper()
	v, err := samples.ParseJSON([]byte(src))
	require.NoError(t, err)
	return v
}

func TestGraph_FoldMergesSamples(t *testing.T) {
	g := NewGraph()
	g.Fold("Person", mustParse(t, `{"id": 1}`))
	g.Fold("Person", mustParse(t, `{"id": 2, "name": "x"}`))
	g.Build()

	require.Len(t, g.Roots, 1)
	root := g.Roots[0]
	assert.Equal(t, "Person", root.Name)
	require.Equal(t, KindClass, root.Type.Kind)

	id, ok := root.Type.Class.Lookup("id")
	require.True(t, ok)
	assert.Equal(t, KindInteger, id.Kind)

	name, ok := root.Type.Class.Lookup("name")
	require.True(t, ok)
	require.Equal(t, KindUnion, name.Kind)
	inner, nullable := name.Union.Nullable()
	require.True(t, nullable)
	assert.Equal(t, KindString, inner.Kind)
}

func TestGraph_IndependentRootsStayDistinct(t *testing.T) {
	g := NewGraph()
	g.Fold("TopLevelA", mustParse(t, `{"x": 1}`))
	g.Fold("TopLevelB", mustParse(t, `{"x": 1}`))
	g.Build()

	require.Len(t, g.Roots, 2)
	require.Len(t, g.Classes, 2, "structurally identical roots remain distinct entities")
	assert.NotSame(t, g.Classes[0], g.Classes[1])
	assert.True(t, Equal(ClassOf(g.Classes[0]), ClassOf(g.Classes[1])))
}

func TestGraph_BuildCollectsNestedEntities(t *testing.T) {
	g := NewGraph()
	g.Fold("Order", mustParse(t, `{"items": [{"sku": "a"}], "customer": {"name": "x"}}`))
	g.Build()

	// Order itself plus the item and customer classes, in discovery order.
	require.Len(t, g.Classes, 3)
	assert.Equal(t, []string{"Order"}, g.Classes[0].Names)
	assert.Equal(t, []string{"item"}, g.Classes[1].Names)
	assert.Equal(t, []string{"customer"}, g.Classes[2].Names)
	assert.True(t, g.Built())
}

func TestGraph_SelfReferentialClass(t *testing.T) {
	// A class can reference itself through a property; Build and Equal
	// must both terminate.
	node := NewClass("node")
	node.Set("value", IntegerType)
	node.Set("children", ArrayOf(ClassOf(node)))

	g := NewGraph()
	g.SetRoot("Tree", ClassOf(node))
	g.Build()

	require.Len(t, g.Classes, 1)
	assert.True(t, Equal(ClassOf(node), ClassOf(node)))
}

func TestGraph_SampleThenSchemaTypeUnify(t *testing.T) {
	g := NewGraph()
	g.Fold("Thing", mustParse(t, `{"a": 1}`))

	extra := NewClass("Thing")
	extra.Set("b", StringType)
	g.SetRoot("Thing", ClassOf(extra))
	g.Build()

	require.Len(t, g.Roots, 1)
	root := g.Roots[0].Type
	require.Equal(t, KindClass, root.Kind)
	_, hasA := root.Class.Lookup("a")
	_, hasB := root.Class.Lookup("b")
	assert.True(t, hasA)
	assert.True(t, hasB)
}

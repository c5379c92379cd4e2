package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
	"github.com/katalvlaran/chronon/topo"
)

func pos(order []*graph.Node, n *graph.Node) int {
	for i, o := range order {
		if o == n {
			return i
		}
	}
	return -1
}

func TestAncestors_ParentsBeforeChildren(t *testing.T) {
	m := graph.NewMap()
	a := m.Obtain(nil, op.NewEmptySource("a"))
	b := m.Obtain(nil, op.NewEmptySource("b"))
	c := m.Obtain([]*graph.Node{a, b}, op.NewEmptySource("c")) // not a real operator, fine for ordering only

	order, err := topo.Ancestors([]*graph.Node{c})
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Less(t, pos(order, a), pos(order, c))
	assert.Less(t, pos(order, b), pos(order, c))
}

func TestAncestors_SharedSubexpressionAppearsOnce(t *testing.T) {
	m := graph.NewMap()
	shared := m.Obtain(nil, op.NewConstant(1))
	left := m.Obtain([]*graph.Node{shared}, op.NewEmptySource("left"))
	right := m.Obtain([]*graph.Node{shared}, op.NewEmptySource("right"))

	order, err := topo.Ancestors([]*graph.Node{left, right})
	require.NoError(t, err)

	count := 0
	for _, n := range order {
		if n == shared {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

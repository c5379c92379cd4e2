package engine

import (
	"github.com/katalvlaran/chronon/align"
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
)

// computeNode produces node i's output block for [tStart, tEnd), given
// every parent's output already computed earlier in the same batch
// (topo.Ancestors guarantees parents precede children).
func computeNode(n *graph.Node, i int, sess *Session, batch []block.Block[any], tStart, tEnd block.Timestamp) block.Block[any] {
	if n.IsSource() {
		src := n.Op.(op.Source)

		return src.Run(sess.opState[i], tStart, tEnd)
	}

	inputs := make([]block.Block[any], len(sess.parentIdx[i]))
	for j, pIdx := range sess.parentIdx[i] {
		inputs[j] = batch[pIdx]
	}

	switch o := n.Op.(type) {
	case op.Operator:
		return align.Run(sess.alignSt[i], o, sess.opState[i], inputs)
	case op.Combiner:
		return o.Combine(sess.opState[i], tStart, tEnd, inputs)
	case op.Reshaper:
		return o.Apply(sess.opState[i], tStart, tEnd, inputs[0])
	default:
		panic(ErrUnknownOpShape)
	}
}

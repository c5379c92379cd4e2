package graph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chronon/op"
)

// Node is an (Op, parents) pair. Equality and hashing are purely
// structural on that pair; the identity map is the only thing that
// constructs Nodes, so two structurally-equal Nodes are always the same
// object and plain == is a valid equality check everywhere else in the
// engine.
//
// Node is conceptually immutable. Its Op and Parents never change after
// construction; it also caches the structural key it was obtained
// under. The identity map does not read that field back: it sweeps by
// scanning its own entries.
type Node struct {
	Op      op.Op
	Parents []*Node

	key string // structural key, cached at construction
}

// IsSource reports whether n is a zero-parent node (a Source).
func (n *Node) IsSource() bool { return len(n.Parents) == 0 }

// structuralKey derives the identity-map key for (parents, o): the Op's
// own Key() combined with the ordered parent pointers. Parents are
// assumed already canonical (obtained from this same map), so pointer
// identity is a valid proxy for "equal parent".
func structuralKey(parents []*Node, o op.Op) string {
	var b strings.Builder
	b.WriteString(o.Key())
	b.WriteByte('(')
	for i, p := range parents {
		if i > 0 {
			b.WriteByte(',')
		}
		// Parents are already deduplicated Node pointers, so their address
		// is a stable proxy for "same parent" within a process.
		fmt.Fprintf(&b, "%p", p)
	}
	b.WriteByte(')')

	return b.String()
}

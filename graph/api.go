// File: api.go
// Role: thin public facade over the process-wide default identity map.
// No algorithmic logic lives here — see map.go for Obtain's actual
// behavior, including constant folding and weak-ref sweeping.
package graph

import "github.com/katalvlaran/chronon/op"

// Default is the process-wide identity map used by the package-level
// Obtain. Embedded uses that want isolated dedup (e.g. two independent
// test cases that must not see each other's nodes) should construct
// their own *Map via NewMap and call its Obtain method directly instead
// of reaching for Default.
var Default = NewMap()

// Obtain returns the unique Node for (parents, o) from the process-wide
// Default map. See Map.Obtain for the full contract.
func Obtain(parents []*Node, o op.Op) *Node {
	return Default.Obtain(parents, o)
}

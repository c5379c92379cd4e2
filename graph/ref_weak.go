//go:build !chronon_strongrefs

package graph

import "weak"

// ref is the identity map's entry representation: a weak pointer to a
// live Node. Once every strong reference a caller holds is gone, Value
// starts returning nil and the entry becomes reclaimable by the next
// opportunistic sweep. This is the default build: a weak-valued hash
// table plus a periodic dead-entry sweep.
type ref struct {
	p weak.Pointer[Node]
}

func newRef(n *Node) ref { return ref{p: weak.Make(n)} }

// load returns the live Node, or nil if it has been reclaimed.
func (r ref) load() *Node { return r.p.Value() }

// Package graph defines Node — the (operation, parents) pair whose
// identity equals structural equivalence — and the process-wide
// identity map that enforces that equality by construction.
//
// Two expressions that are provably equivalent (same Op, same ordered
// parent tuple) always yield the same *Node object, never merely equal
// ones: obtain(parents, op) is the sole constructor, and every node in
// the engine that isn't produced by it is a bug. This is the same
// pattern lvlath's core.Graph uses to make a vertex ID the single
// source of truth for "is this the same vertex" — here the "ID" is a
// structural key computed from the Op and the (already-canonical)
// parent pointers, rather than a string the caller chose.
//
// Identity-map entries are weak: once nothing outside the map still
// holds a *Node, the entry becomes reclaimable, and a periodic sweep
// (triggered opportunistically before inserts, never on a hot query
// path) removes it. A build tag switches to strong references for
// runtimes where that trade-off is unwelcome — see ref_strong.go.
package graph

package graph

import (
	"sync"

	"github.com/katalvlaran/chronon/op"
)

// Map is a deduplicating, process-wide (or private, for embedded use)
// cache from structural node keys to the live Node for that key. All
// mutation is serialized behind mu — the only process-wide mutable
// resource the identity map needs.
type Map struct {
	mu      sync.Mutex
	entries map[string]ref

	// sweepEvery bounds how often Obtain pays for a full dead-entry scan:
	// one scan every sweepEvery inserts; 0 or less disables opportunistic
	// sweeping, leaving only explicit Sweep calls. Sweeping
	// is always triggered opportunistically, before an insert, never on
	// a hot query path.
	sweepEvery int
	sinceSweep int
}

// NewMap constructs an empty, independent identity map. Most callers
// should use the package-level Obtain, which shares the Default map;
// NewMap exists for embedded/test use where global dedup is unwanted.
func NewMap() *Map {
	return &Map{entries: make(map[string]ref), sweepEvery: 64}
}

// Obtain returns the unique Node for (parents, o), constructing one if
// this is the first time that structural key has been seen. Constant
// folding is applied before the lookup: if every parent is a constant
// and o's flags are Foldable, Obtain returns (or builds) a constant
// node for op.Apply(parent values...) instead of an operator node.
func (m *Map) Obtain(parents []*Node, o op.Op) *Node {
	if o == nil {
		panic("graph: Obtain(op=nil)")
	}
	if folded, ok := foldConstant(parents, o); ok {
		parents, o = nil, folded
	}

	key := structuralKey(parents, o)

	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.entries[key]; ok {
		if n := r.load(); n != nil {
			return n
		}
		// Dead entry found on the lookup path itself; drop it now rather
		// than waiting for the next sweep.
		delete(m.entries, key)
	}

	m.maybeSweepLocked()

	n := &Node{Op: o, Parents: parents, key: key}
	m.entries[key] = newRef(n)

	return n
}

// maybeSweepLocked removes dead entries opportunistically. Callers must
// hold mu. Strong-reference builds make Sweep a no-op via ref.load
// always succeeding, so the scan is harmless but pointless there.
func (m *Map) maybeSweepLocked() {
	m.sinceSweep++
	if m.sweepEvery <= 0 || m.sinceSweep < m.sweepEvery {
		return
	}
	m.sinceSweep = 0
	for k, r := range m.entries {
		if r.load() == nil {
			delete(m.entries, k)
		}
	}
}

// Sweep forces an immediate dead-entry scan, regardless of the
// opportunistic schedule. Safe to call concurrently; mostly useful in
// tests that want a deterministic point to assert reclamation occurred.
func (m *Map) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, r := range m.entries {
		if r.load() == nil {
			delete(m.entries, k)
		}
	}
	m.sinceSweep = 0
}

// Len reports the number of entries the map currently holds — an upper
// bound on live nodes, since dead entries may linger between sweeps.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// foldConstant implements constant propagation: if o is an Operator,
// its flags are Foldable, and every parent's Op is a ConstantOp, apply
// it eagerly and return an Op for the folded result.
func foldConstant(parents []*Node, o op.Op) (op.Op, bool) {
	operator, isOperator := o.(op.Operator)
	if !isOperator || !o.Flags().Foldable() {
		return nil, false
	}
	if len(parents) == 0 {
		return nil, false
	}

	xs := make([]any, len(parents))
	for i, p := range parents {
		c, ok := p.Op.(op.ConstantOp)
		if !ok {
			return nil, false
		}
		xs[i] = c.Value()
	}

	out, ok := operator.Apply(nil, 0, xs)
	if !ok {
		// A foldable operator declares AlwaysTicks, so this should be
		// unreachable; treat it defensively as "cannot fold" rather than
		// propagating a phantom suppressed value.
		return nil, false
	}

	return op.NewConstant(out), true
}

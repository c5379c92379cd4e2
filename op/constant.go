package op

import (
	"fmt"

	"github.com/katalvlaran/chronon/block"
)

// constantOp is the Op backing every constant node, whether created
// explicitly via the public constant(v) constructor or implicitly by
// the identity map's constant folder. Its value is stored type-erased;
// the generic public constructor in package ops boxes/unboxes at the
// boundary.
type constantOp struct {
	v   any
	key string
}

// NewConstant builds the Op for a node whose value is v over all time,
// ticking exactly once at the start of evaluation. Two constantOps
// built from equal values produce equal keys, so obtain(nil, op) on
// them returns the same Node.
func NewConstant(v any) Op {
	return constantOp{v: v, key: fmt.Sprintf("const:%T:%v", v, v)}
}

func (c constantOp) Key() string { return c.key }

func (c constantOp) Flags() Flags {
	return Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true}
}

func (c constantOp) Value() any { return c.v }

// NewState returns a fresh "emitted" flag: false until the first Run.
func (c constantOp) NewState() any {
	emitted := false
	return &emitted
}

// Run emits the constant's single knot at tStart the first time it is
// called with a non-empty interval for a given state, then nothing ever
// again — even if later
// batches re-enter [tStart, tEnd) after a Duplicate, since state is
// cloned along with the "already emitted" bit.
func (c constantOp) Run(state any, tStart, tEnd block.Timestamp) block.Block[any] {
	emitted := state.(*bool)
	if *emitted || !(tStart < tEnd) {
		return block.Empty[any]()
	}
	*emitted = true

	return block.NewUnchecked([]block.Timestamp{tStart}, []any{c.v})
}

// emptySource is the Op backing empty_node(T): a source that never
// produces a knot.
type emptySource struct{ key string }

// NewEmptySource builds a Source that never ticks. typeName is folded
// into the key purely so empty_node(int) and empty_node(string) remain
// distinct nodes under identity-map dedup.
func NewEmptySource(typeName string) Source {
	return emptySource{key: "empty:" + typeName}
}

func (e emptySource) Key() string { return e.key }
func (e emptySource) Flags() Flags {
	return Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true}
}
func (e emptySource) NewState() any { return nil }
func (e emptySource) Run(_ any, _, _ block.Timestamp) block.Block[any] {
	return block.Empty[any]()
}

// blockSource is the Op backing block_node(block): a fixed, fully
// in-memory source. Slicing a pre-built block by [tStart, tEnd) is pure
// and associative, so this Op needs no per-node state at all.
type blockSource struct {
	data block.Block[any]
	key  string
}

// NewBlockSource wraps a fixed Block[any] as a Source. key must be
// unique per distinct underlying data (callers — package ops — derive
// it from the backing storage, e.g. a pointer-and-length tag, since two
// independently-built in-memory buffers are never expected to
// structurally dedup against each other).
func NewBlockSource(data block.Block[any], key string) Source {
	return blockSource{data: data, key: key}
}

func (b blockSource) Key() string { return b.key }
func (b blockSource) Flags() Flags {
	return Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true}
}
func (b blockSource) NewState() any { return nil }
func (b blockSource) Run(_ any, tStart, tEnd block.Timestamp) block.Block[any] {
	return b.data.Slice(tStart, tEnd)
}

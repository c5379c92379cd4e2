package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronon/align"
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/op"
)

type addOp struct{}

func (addOp) Key() string { return "add" }
func (addOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true}
}
func (addOp) NewState() any { return nil }
func (addOp) Apply(_ any, _ block.Timestamp, xs []any) (any, bool) {
	return xs[0].(int) + xs[1].(int), true
}

func erasedInts(pairs ...int) block.Block[any] {
	n := len(pairs) / 2
	times := make([]block.Timestamp, n)
	values := make([]any, n)
	for i := 0; i < n; i++ {
		times[i] = block.Timestamp(pairs[2*i])
		values[i] = pairs[2*i+1]
	}

	return block.NewUnchecked(times, values)
}

func toIntPairs(b block.Block[any]) []int {
	out := make([]int, 0, 2*b.Len())
	for i := 0; i < b.Len(); i++ {
		k := b.At(i)
		out = append(out, int(k.Time), k.Value.(int))
	}

	return out
}

// TestKernel_UnionIntersectLeft runs the same pair of inputs through all
// three policies: L = [(1,1),(2,2),(3,3),(4,4)], R = [(2,5),(3,6),(5,8)].
func TestKernel_UnionIntersectLeft(t *testing.T) {
	l := erasedInts(1, 1, 2, 2, 3, 3, 4, 4)
	r := erasedInts(2, 5, 3, 6, 5, 8)

	union := align.Run(align.NewState(op.Union, 2, nil), addOp{}, nil, []block.Block[any]{l, r})
	assert.Equal(t, []int{2, 7, 3, 9, 4, 10, 5, 12}, toIntPairs(union))

	intersect := align.Run(align.NewState(op.Intersect, 2, nil), addOp{}, nil, []block.Block[any]{l, r})
	assert.Equal(t, []int{2, 7, 3, 9}, toIntPairs(intersect))

	left := align.Run(align.NewState(op.Left, 2, nil), addOp{}, nil, []block.Block[any]{l, r})
	assert.Equal(t, []int{2, 7, 3, 9, 4, 10}, toIntPairs(left))
}

func TestKernel_FastPathEquivalence(t *testing.T) {
	l := erasedInts(1, 1, 2, 2, 3, 3)
	// r shares l's backing time slice, so block.EqualTimes admits the
	// fast path for this first run.
	r := block.NewUnchecked(l.Times(), []any{10, 20, 30})

	fast := align.Run(align.NewState(op.Union, 2, nil), addOp{}, nil, []block.Block[any]{l, r})

	// Force the non-fast-path merge loop by copying r into a fresh
	// backing array with the same times but a different allocation, so
	// block.EqualTimes (a pointer check) reports false even though the
	// values are identical to the fast-path case.
	rTimes := append([]block.Timestamp(nil), r.Times()...)
	rValues := append([]any(nil), r.Values()...)
	rCopy := block.NewUnchecked(rTimes, rValues)
	slow := align.Run(align.NewState(op.Union, 2, nil), addOp{}, nil, []block.Block[any]{l, rCopy})

	assert.Equal(t, toIntPairs(fast), toIntPairs(slow))
}

func TestKernel_UnionInitialValue(t *testing.T) {
	l := erasedInts(1, 1, 2, 2)
	r := erasedInts(2, 100)

	initials := []op.Initial{{}, {Value: 0, Has: true}}
	out := align.Run(align.NewState(op.Union, 2, initials), addOp{}, nil, []block.Block[any]{l, r})
	// With R seeded at 0, L can tick from its very first knot.
	assert.Equal(t, []int{1, 1, 2, 102}, toIntPairs(out))
}

func TestKernel_LeftIdentity(t *testing.T) {
	l := erasedInts(1, 1, 2, 2, 3, 3)
	out := align.Run(align.NewState(op.Left, 1, nil), addOpUnary{}, nil, []block.Block[any]{l})
	assert.Equal(t, toIntPairs(l), toIntPairs(out))
}

type addOpUnary struct{}

func (addOpUnary) Key() string { return "identity" }
func (addOpUnary) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true}
}
func (addOpUnary) NewState() any { return nil }
func (addOpUnary) Apply(_ any, _ block.Timestamp, xs []any) (any, bool) {
	return xs[0], true
}

func TestKernel_BatchConsistency(t *testing.T) {
	l := erasedInts(1, 1, 2, 2, 3, 3, 4, 4)
	r := erasedInts(2, 5, 3, 6, 5, 8)

	whole := align.Run(align.NewState(op.Union, 2, nil), addOp{}, nil, []block.Block[any]{l, r})

	// Split both inputs at t=3 and replay through a threaded state.
	st := align.NewState(op.Union, 2, nil)
	part1 := align.Run(st, addOp{}, nil, []block.Block[any]{l.Slice(0, 3), r.Slice(0, 3)})
	part2 := align.Run(st, addOp{}, nil, []block.Block[any]{l.Slice(3, 10), r.Slice(3, 10)})
	spliced := block.Concat(part1, part2)

	require.Equal(t, toIntPairs(whole), toIntPairs(spliced))
}

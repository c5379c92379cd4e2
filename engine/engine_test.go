package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/engine"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
	"github.com/katalvlaran/chronon/ops"
)

func intBlock(times []block.Timestamp, values []int) block.Block[int] {
	return block.NewUnchecked(times, values)
}

func addOp() op.Operator { return testAddOp{} }

// testAddOp is a minimal integer-add Operator used only to exercise the
// scheduler's alignment dispatch end-to-end.
type testAddOp struct{}

func (testAddOp) Key() string { return "test_add" }
func (testAddOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true, Align: op.Union}
}
func (testAddOp) NewState() any { return nil }
func (testAddOp) Apply(_ any, _ block.Timestamp, xs []any) (any, bool) {
	return xs[0].(int) + xs[1].(int), true
}

func TestEvaluate_UnionAlignAdd(t *testing.T) {
	l := ops.FromBlock(intBlock([]block.Timestamp{1, 2, 3, 4}, []int{1, 2, 3, 4}))
	r := ops.FromBlock(intBlock([]block.Timestamp{2, 3, 5}, []int{5, 6, 8}))
	sum := graph.Obtain([]*graph.Node{l, r}, addOp())

	var sched engine.Scheduler
	out, err := sched.Evaluate([]*graph.Node{sum}, 0, 10, nil)
	require.NoError(t, err)

	got := out[sum]
	assert.Equal(t, []block.Timestamp{2, 3, 4, 5}, got.Times())
	assert.Equal(t, []any{7, 9, 10, 12}, got.Values())
}

func TestEvaluate_BatchConsistency(t *testing.T) {
	l := ops.FromBlock(intBlock([]block.Timestamp{1, 2, 3, 4}, []int{1, 2, 3, 4}))
	r := ops.FromBlock(intBlock([]block.Timestamp{2, 3, 5}, []int{5, 6, 8}))
	sum := graph.Obtain([]*graph.Node{l, r}, addOp())

	var sched engine.Scheduler
	whole, err := sched.Evaluate([]*graph.Node{sum}, 0, 10, nil)
	require.NoError(t, err)

	interval := block.Duration(2)
	batched, err := sched.Evaluate([]*graph.Node{sum}, 0, 10, &interval)
	require.NoError(t, err)

	assert.Equal(t, whole[sum].Times(), batched[sum].Times())
	assert.Equal(t, whole[sum].Values(), batched[sum].Values())
}

func TestScheduler_StartAtThenIncrementalEvaluate(t *testing.T) {
	x := ops.FromBlock(intBlock([]block.Timestamp{1, 2, 3}, []int{10, 20, 30}))
	counted := ops.CountKnots(x)

	var sched engine.Scheduler
	sess, err := sched.StartAt([]*graph.Node{counted}, 0)
	require.NoError(t, err)

	require.NoError(t, sched.EvaluateUntil(sess, 2))
	assert.Equal(t, []any{1}, sess.Output(counted).Values())

	require.NoError(t, sched.EvaluateUntil(sess, 4))
	got := sess.Output(counted)
	assert.Equal(t, []block.Timestamp{1, 2, 3}, got.Times())
	assert.Equal(t, []any{1, 2, 3}, got.Values())
}

func TestScheduler_Duplicate_IndependentContinuation(t *testing.T) {
	x := ops.FromBlock(intBlock([]block.Timestamp{1, 2, 3, 4}, []int{1, 2, 3, 4}))
	counted := ops.CountKnots(x)

	var sched engine.Scheduler
	sess, err := sched.StartAt([]*graph.Node{counted}, 0)
	require.NoError(t, err)
	require.NoError(t, sched.EvaluateUntil(sess, 2))

	fork := sched.Duplicate(sess)

	require.NoError(t, sched.EvaluateUntil(sess, 4))
	require.NoError(t, sched.EvaluateUntil(fork, 3))

	assert.Equal(t, []any{1, 2, 3}, sess.Output(counted).Values())
	assert.Equal(t, []any{1, 2}, fork.Output(counted).Values())
}

func TestEvaluateUntil_RejectsPastInterval(t *testing.T) {
	x := ops.FromBlock(intBlock([]block.Timestamp{1}, []int{1}))
	var sched engine.Scheduler
	sess, err := sched.StartAt([]*graph.Node{x}, 5)
	require.NoError(t, err)

	err = sched.EvaluateUntil(sess, 3)
	assert.ErrorIs(t, err, engine.ErrBadInterval)
}

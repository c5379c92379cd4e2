package scaffold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/scaffold"
)

func sumInt(acc, x int) int { return acc + x }

func apply1(o interface {
	NewState() any
	Apply(state any, t block.Timestamp, xs []any) (any, bool)
}, times []block.Timestamp, values []int) []int {
	st := o.NewState()
	out := make([]int, 0, len(times))
	for i, t := range times {
		if v, ok := o.Apply(st, t, []any{values[i]}); ok {
			out = append(out, v.(int))
		}
	}

	return out
}

func TestWindow_SumSize3_NoEarlyEmit(t *testing.T) {
	w, err := scaffold.NewWindow("win3", 3, sumInt, func(acc, x int) int { return acc - x }, func(acc int, _ int) int { return acc }, false)
	require.NoError(t, err)

	got := apply1(w, []block.Timestamp{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{6, 9, 12}, got)
}

func TestWindow_SumSize3_EmitEarly(t *testing.T) {
	w, err := scaffold.NewWindow("win3early", 3, sumInt, func(acc, x int) int { return acc - x }, func(acc int, _ int) int { return acc }, true)
	require.NoError(t, err)

	got := apply1(w, []block.Timestamp{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{1, 3, 6, 9, 12}, got)
}

func TestWindow_RejectsNonPositiveSize(t *testing.T) {
	_, err := scaffold.NewWindow[int, int, int]("bad", 0, sumInt, sumInt, func(acc int, _ int) int { return acc }, false)
	assert.ErrorIs(t, err, scaffold.ErrWindowTooSmall)
}

func TestInception_CumulativeSum(t *testing.T) {
	in := scaffold.NewInception(
		"cumsum",
		func(x int) int { return x },
		sumInt,
		func(acc int) int { return acc },
		nil,
		true,
	)
	got := apply1(in, []block.Timestamp{1, 2, 3}, []int{1, 2, 3})
	assert.Equal(t, []int{1, 3, 6}, got)
}

func TestInception_ShouldTickGate(t *testing.T) {
	// Only emits once at least 2 knots have been seen.
	in := scaffold.NewInception(
		"needs2",
		func(x int) int { return x },
		sumInt,
		func(acc int) int { return acc },
		func(_ int, seen int) bool { return seen >= 2 },
		false,
	)
	got := apply1(in, []block.Timestamp{1, 2, 3}, []int{10, 20, 30})
	assert.Equal(t, []int{30, 60}, got)
}

func TestTimeWindow_EvictsOutsideDuration(t *testing.T) {
	tw, err := scaffold.NewTimeWindow("tw", block.Duration(5), sumInt, func(acc, x int) int { return acc - x }, func(acc int, _ int) int { return acc })
	require.NoError(t, err)

	got := apply1(tw, []block.Timestamp{0, 2, 5, 9}, []int{1, 2, 3, 4})
	// t=0: window [-5,0] -> {1} -> 1
	// t=2: window [-3,2] -> {1,2} -> 3
	// t=5: window [0,5]  -> {1,2,3} -> 6 (t=0 still >= cutoff 0)
	// t=9: window [4,9]  -> evict t=0,2 -> {3,4} -> 7
	assert.Equal(t, []int{1, 3, 6, 7}, got)
}

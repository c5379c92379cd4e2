package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronon/block"
)

func knots(pairs ...int) []block.Knot[int] {
	ks := make([]block.Knot[int], 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		ks = append(ks, block.Knot[int]{Time: block.Timestamp(pairs[i]), Value: pairs[i+1]})
	}

	return ks
}

func TestFromPairs_RejectsNonIncreasing(t *testing.T) {
	_, err := block.FromPairs(knots(1, 10, 1, 20))
	assert.ErrorIs(t, err, block.ErrNotIncreasing)

	_, err = block.FromPairs(knots(2, 10, 1, 20))
	assert.ErrorIs(t, err, block.ErrNotIncreasing)
}

func TestFromPairs_Empty(t *testing.T) {
	b, err := block.FromPairs[int](nil)
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
}

func TestSlice_WholeRangeReturnsSameBacking(t *testing.T) {
	b, err := block.FromPairs(knots(1, 1, 2, 2, 3, 3))
	require.NoError(t, err)

	whole := b.Slice(1, 4)
	assert.True(t, block.EqualTimes(b, whole), "whole-range slice must be pointer-identical")
}

func TestSlice_HalfOpenBoundaries(t *testing.T) {
	b, err := block.FromPairs(knots(1, 1, 2, 2, 3, 3, 4, 4))
	require.NoError(t, err)

	sub := b.Slice(2, 4)
	require.Equal(t, 2, sub.Len())
	assert.Equal(t, block.Timestamp(2), sub.At(0).Time)
	assert.Equal(t, block.Timestamp(3), sub.At(1).Time)
}

func TestConcat_SkipsEmptyAndSingleFastPath(t *testing.T) {
	b, err := block.FromPairs(knots(1, 1, 2, 2))
	require.NoError(t, err)
	empty := block.Empty[int]()

	got := block.Concat(empty, b, empty)
	assert.True(t, block.EqualTimes(b, got), "single non-empty input must be returned unchanged")
}

func TestConcat_RoundTripWithSlice(t *testing.T) {
	b, err := block.FromPairs(knots(1, 1, 2, 2, 3, 3, 4, 4, 5, 5))
	require.NoError(t, err)

	left := b.Slice(1, 3)
	right := b.Slice(3, 6)
	joined := block.Concat(left, right)
	assert.True(t, block.Eq(b.Slice(1, 6), joined))
}

func TestEq(t *testing.T) {
	a, _ := block.FromPairs(knots(1, 1, 2, 2))
	b, _ := block.FromPairs(knots(1, 1, 2, 2))
	c, _ := block.FromPairs(knots(1, 1, 2, 3))

	assert.True(t, block.Eq(a, b))
	assert.False(t, block.Eq(a, c))
}

func TestApproxEq(t *testing.T) {
	a, _ := block.FromPairs([]block.Knot[float64]{{Time: 1, Value: 1.0000001}})
	b, _ := block.FromPairs([]block.Knot[float64]{{Time: 1, Value: 1.0000002}})
	assert.True(t, block.ApproxEq(a, b, 1e-5))
	assert.False(t, block.ApproxEq(a, b, 1e-10))
}

func TestToAnyFromAny_RoundTrip(t *testing.T) {
	b, _ := block.FromPairs(knots(1, 1, 2, 2, 3, 3))
	erased := block.ToAny(b)
	back := block.FromAny[int](erased)
	assert.True(t, block.Eq(b, back))
}

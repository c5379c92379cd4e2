package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/internal/synth"
)

func TestWalk_DeterministicForSameSeed(t *testing.T) {
	a := synth.Walk(10, 7, 1.0, 0, 1)
	b := synth.Walk(10, 7, 1.0, 0, 1)
	assert.Equal(t, a.Times(), b.Times())
	assert.Equal(t, a.Values(), b.Values())
	assert.Equal(t, 10, a.Len())
}

func TestWalk_DifferentSeedDiverges(t *testing.T) {
	a := synth.Walk(20, 1, 1.0, 0, 1)
	b := synth.Walk(20, 2, 1.0, 0, 1)
	assert.NotEqual(t, a.Values(), b.Values())
}

func TestWalk_ZeroSigmaIsFlat(t *testing.T) {
	w := synth.Walk(5, 1, 0, 0, 1)
	for _, v := range w.Values() {
		assert.Equal(t, 0.0, v)
	}
}

func TestWalk_EmptyForNonPositiveN(t *testing.T) {
	assert.True(t, synth.Walk(0, 1, 1, 0, 1).IsEmpty())
	assert.True(t, synth.Walk(-3, 1, 1, 0, 1).IsEmpty())
}

func TestSine_ZeroNoiseIsPureSine(t *testing.T) {
	s := synth.Sine(4, 1, 0.25, 1.0, 0, 0, 1)
	vals := s.Values()
	assert.InDelta(t, 0.0, vals[0], 1e-9)
	assert.InDelta(t, 1.0, vals[1], 1e-9)
	assert.InDelta(t, 0.0, vals[2], 1e-9)
	assert.InDelta(t, -1.0, vals[3], 1e-9)
}

func TestChirp_MonotonicTimestamps(t *testing.T) {
	c := synth.Chirp(16, 3, 0.01, 0.2, 1.0, 0, 0, 2)
	times := c.Times()
	for i := 1; i < len(times); i++ {
		assert.Greater(t, int64(times[i]), int64(times[i-1]))
	}
}

func TestSpike_ClampsCountAndDeterministic(t *testing.T) {
	a := synth.Spike(5, 9, 100, 3.0, 0, 1)
	b := synth.Spike(5, 9, 100, 3.0, 0, 1)
	assert.Equal(t, a.Values(), b.Values())

	var nonzero int
	for _, v := range a.Values() {
		if v != 0 {
			nonzero++
		}
	}
	assert.LessOrEqual(t, nonzero, 5)
}

func TestGenerators_TimestampsRespectStep(t *testing.T) {
	w := synth.Walk(3, 1, 1, 100, 10)
	assert.Equal(t, []block.Timestamp{100, 110, 120}, w.Times())
}

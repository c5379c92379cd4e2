package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/op"
)

func TestConstant_SameValueSameKey(t *testing.T) {
	a := op.NewConstant(3)
	b := op.NewConstant(3)
	assert.Equal(t, a.Key(), b.Key())

	c := op.NewConstant(4)
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestConstant_Flags_AreFoldable(t *testing.T) {
	c := op.NewConstant(1).Flags()
	assert.True(t, c.Foldable())
}

func TestConstant_TicksOnceThenEmpty(t *testing.T) {
	c := op.NewConstant(42).(op.Source)
	st := c.NewState()

	first := c.Run(st, 10, 20)
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, block.Timestamp(10), first.At(0).Time)
	assert.Equal(t, 42, first.At(0).Value)

	second := c.Run(st, 20, 30)
	assert.True(t, second.IsEmpty())
}

func TestEmptySource_NeverTicks(t *testing.T) {
	s := op.NewEmptySource("int")
	out := s.Run(s.NewState(), 0, 1000)
	assert.True(t, out.IsEmpty())
}

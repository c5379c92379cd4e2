package scaffold

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/op"
)

// timeWindowState buffers knots that still fall inside the trailing
// window, oldest first, so eviction is a cheap pop from the front.
type timeWindowState[In, Data any] struct {
	times []block.Timestamp
	vals  []In
	acc   Data
}

// TimeWindowOp is the time-windowed variant of the window reducer: a
// reduction over the closed window [t-W, t] for the current knot's time
// t (a knot exactly W before t is still inside), instead of a fixed knot count. Every knot that
// ticks is, by definition, inside its own window, so this variant
// always emits — there is no emit_early flag to set.
type TimeWindowOp[In, Data, Out any] struct {
	key     string
	w       block.Duration
	add     func(acc Data, x In) Data
	sub     func(acc Data, x In) Data
	extract func(acc Data, count int) Out
}

// NewTimeWindow builds a TimeWindowOp spanning duration w. Returns
// ErrWindowTooSmall for w <= 0.
func NewTimeWindow[In, Data, Out any](
	key string,
	w block.Duration,
	add func(acc Data, x In) Data,
	sub func(acc Data, x In) Data,
	extract func(acc Data, count int) Out,
) (*TimeWindowOp[In, Data, Out], error) {
	if w <= 0 {
		return nil, ErrWindowTooSmall
	}
	if add == nil || sub == nil || extract == nil {
		panic("scaffold: NewTimeWindow requires non-nil add/sub/extract")
	}

	return &TimeWindowOp[In, Data, Out]{key: key, w: w, add: add, sub: sub, extract: extract}, nil
}

func (o *TimeWindowOp[In, Data, Out]) Key() string { return o.key }

func (o *TimeWindowOp[In, Data, Out]) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: false, TimeAgnostic: false}
}

func (o *TimeWindowOp[In, Data, Out]) NewState() any {
	return &timeWindowState[In, Data]{}
}

func (o *TimeWindowOp[In, Data, Out]) Apply(state any, t block.Timestamp, xs []any) (any, bool) {
	st := state.(*timeWindowState[In, Data])
	x := xs[0].(In)

	st.times = append(st.times, t)
	st.vals = append(st.vals, x)
	st.acc = o.add(st.acc, x)

	cutoff := t.Add(-o.w)
	evicted := 0
	for evicted < len(st.times) && st.times[evicted] < cutoff {
		st.acc = o.sub(st.acc, st.vals[evicted])
		evicted++
	}
	if evicted > 0 {
		st.times = st.times[evicted:]
		st.vals = st.vals[evicted:]
	}

	return any(o.extract(st.acc, len(st.times))), true
}

package scaffold

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/op"
)

// windowState is a ring buffer of the last N inputs plus the invertible
// accumulator over them. buf is filled left-to-right until it reaches
// capacity, then wraps; head always points at the oldest element once
// the buffer is full.
type windowState[In, Data any] struct {
	buf   []In
	head  int
	count int
	acc   Data
}

// WindowOp is the fixed-knot-count associative reducer: a reduction
// over the last N inputs, queried in O(1) amortized via an invertible
// accumulator (Add folds a new knot in, Sub removes an evicted one).
type WindowOp[In, Data, Out any] struct {
	key       string
	n         int
	add       func(acc Data, x In) Data
	sub       func(acc Data, x In) Data
	extract   func(acc Data, count int) Out
	emitEarly bool
}

// NewWindow builds a WindowOp of size n. Returns ErrWindowTooSmall for
// n < 1 — validated here rather than panicking, since an undersized
// window is caller input, not a programmer error.
func NewWindow[In, Data, Out any](
	key string,
	n int,
	add func(acc Data, x In) Data,
	sub func(acc Data, x In) Data,
	extract func(acc Data, count int) Out,
	emitEarly bool,
) (*WindowOp[In, Data, Out], error) {
	if n < 1 {
		return nil, ErrWindowTooSmall
	}
	if add == nil || sub == nil || extract == nil {
		panic("scaffold: NewWindow requires non-nil add/sub/extract")
	}

	return &WindowOp[In, Data, Out]{
		key: key, n: n, add: add, sub: sub, extract: extract, emitEarly: emitEarly,
	}, nil
}

func (o *WindowOp[In, Data, Out]) Key() string { return o.key }

func (o *WindowOp[In, Data, Out]) Flags() op.Flags {
	return op.Flags{AlwaysTicks: o.emitEarly, StatelessOperator: false, TimeAgnostic: true}
}

func (o *WindowOp[In, Data, Out]) NewState() any {
	return &windowState[In, Data]{buf: make([]In, o.n)}
}

func (o *WindowOp[In, Data, Out]) Apply(state any, _ block.Timestamp, xs []any) (any, bool) {
	st := state.(*windowState[In, Data])
	x := xs[0].(In)

	if st.count < o.n {
		st.buf[st.count] = x
		st.acc = o.add(st.acc, x)
		st.count++
	} else {
		evicted := st.buf[st.head]
		st.acc = o.sub(st.acc, evicted)
		st.buf[st.head] = x
		st.head = (st.head + 1) % o.n
		st.acc = o.add(st.acc, x)
	}

	full := st.count == o.n
	if !full && !o.emitEarly {
		return nil, false
	}

	return any(o.extract(st.acc, st.count)), true
}

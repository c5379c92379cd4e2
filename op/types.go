package op

import "github.com/katalvlaran/chronon/block"

// AlignPolicy selects how an N-ary Operator's inputs are joined by the
// alignment kernel (package align).
type AlignPolicy int

const (
	// Union emits at the time of any input's knot, once every input has
	// ticked at least once (at or before that time, across batches).
	Union AlignPolicy = iota
	// Intersect emits only at times where every input has a knot in the
	// current batch; it needs no state across batches.
	Intersect
	// Left emits at the anchor (first parent)'s times, provided every
	// other parent has ticked at least once at or before that time.
	Left
)

// String renders the policy name for log lines and test failures.
func (p AlignPolicy) String() string {
	switch p {
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case Left:
		return "left"
	default:
		return "align(?)"
	}
}

// Flags are the capability bits the alignment kernel and the identity
// map's constant folder dispatch on, instead of switching on concrete Op
// identity. Every Op reports these truthfully; lying about a flag is a
// contract violation whose symptom is silently wrong output, not a
// panic — the same trust model extends to user Source/Operator
// implementations in general.
type Flags struct {
	// AlwaysTicks is true when the operator always produces a value for
	// an aligned input tuple (never suppresses via the Maybe<T> "no
	// value" return).
	AlwaysTicks bool
	// StatelessOperator is true when Apply/Run never reads or writes its
	// state argument; such operators share one empty placeholder state
	// object across every node instantiated from them.
	StatelessOperator bool
	// TimeAgnostic is true when the operator's output does not depend on
	// the current time t, only on the aligned input values and state.
	TimeAgnostic bool
	// Align is the join policy for N-ary Operators. Ignored for Source
	// ops and for unary Operators, where there is nothing to align.
	Align AlignPolicy
}

// Foldable reports whether an Op with these flags is eligible for
// constant propagation: always_ticks ∧ stateless_operator ∧
// time_agnostic.
func (f Flags) Foldable() bool {
	return f.AlwaysTicks && f.StatelessOperator && f.TimeAgnostic
}

// Op is the sealed descriptor every Node carries. Key and Flags are the
// only members common to every shape; concrete behavior is reached by
// asserting to Source, Operator, Combiner or Reshaper.
type Op interface {
	// Key returns a stable, value-derived identifier used by package
	// graph's identity map to recognize structurally identical Ops. Two
	// Ops that would behave identically forever must return equal keys;
	// two Ops that differ in any observable way must not.
	Key() string
	// Flags reports this Op's capability bits.
	Flags() Flags
}

// Source is a zero-parent Op: a leaf that produces knots on demand for
// a requested half-open interval, e.g. a constant, an in-memory buffer,
// or an external feed. Source.Run must satisfy an Operator's core
// invariants: no future-peeking, range discipline, batch consistency,
// determinism.
type Source interface {
	Op
	// NewState constructs fresh per-node state for a new session. Stateless
	// sources may return nil.
	NewState() any
	// Run returns every knot in [tStart, tEnd). state is the value
	// returned by NewState, mutated in place by prior Runs and threaded
	// across batches by the scheduler.
	Run(state any, tStart, tEnd block.Timestamp) block.Block[any]
}

// Operator is a one-or-more-parent Op. The alignment kernel (package
// align) determines which aligned input tuples to evaluate and invokes
// Apply once per tuple; Operator itself never sees whole blocks.
type Operator interface {
	Op
	// NewState constructs fresh per-node state for a new session.
	// Stateless operators may return nil.
	NewState() any
	// Apply computes one output knot from one aligned input tuple. xs has
	// one entry per parent, in parent order. t is the knot's time; the
	// alignment kernel always passes it, while the constant folder passes
	// 0, so time-agnostic operators must not read it. The bool result is
	// the Maybe<T> "ok" bit: false suppresses the knot entirely. Callers
	// honour it whatever the flags say, so an AlwaysTicks operator must
	// always return true.
	Apply(state any, t block.Timestamp, xs []any) (any, bool)
}

// ConstantOp marks an Op whose output is a single unchanging value,
// ticking exactly once at the start of evaluation. The identity map's
// constant folder recognizes this interface to fold pure operators over
// all-constant parents at construction time.
type ConstantOp interface {
	Op
	// Value returns the constant's boxed value.
	Value() any
}

// Initial is one non-anchor input's optional seed value for Union/Left
// alignment: when Has is true, the corresponding input's "valid" bit
// starts true, letting the node tick from the very first knot on
// another input rather than waiting for this one to tick too.
type Initial struct {
	Value any
	Has   bool
}

// WithInitials is implemented by Operators that carry per-parent initial
// values. Initials returns one entry per parent, in parent order;
// Intersect-aligned operators ignore this entirely, and Left-aligned
// operators ignore the entry for parent 0 (the anchor).
type WithInitials interface {
	Initials() []Initial
}

// Combiner is a multi-parent Op that needs the raw, time-ordered input
// blocks for a batch rather than aligned per-tuple tuples — e.g. merging
// independent tick streams into one, where a knot on any single input is
// forwarded on its own, with no requirement that the others have ticked
// too. The alignment kernel's validity-gated tuple model cannot express
// this, so Combiner bypasses it entirely: the scheduler hands it every
// parent's block for [tStart, tEnd) directly.
type Combiner interface {
	Op
	// NewState constructs fresh per-node state for a new session.
	NewState() any
	// Combine produces this batch's output block from every parent's
	// input block, in parent order. Implementations are responsible for
	// their own merge-by-time bookkeeping.
	Combine(state any, tStart, tEnd block.Timestamp, inputs []block.Block[any]) block.Block[any]
}

// Reshaper is a single-parent Op whose output knot times need not equal
// its input knot times — e.g. a time-lag, whose every knot is re-timed
// to time+delta and may need to be held back across a batch boundary
// until its shifted time falls inside the batch being evaluated. Like
// Combiner, this needs the raw input block rather than an aligned tuple.
type Reshaper interface {
	Op
	// NewState constructs fresh per-node state for a new session.
	NewState() any
	// Apply produces this batch's output block from the parent's input
	// block for [tStart, tEnd). Implementations must uphold range
	// discipline: every output knot's time must fall in [tStart, tEnd).
	Apply(state any, tStart, tEnd block.Timestamp, in block.Block[any]) block.Block[any]
}

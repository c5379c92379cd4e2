package op

import "github.com/katalvlaran/chronon/block"

// ExternalOperator adapts a user-supplied pure function into the
// Operator shape: built-in ops stay monomorphic in the hot loop, while
// user-defined operators share this single extension point carrying a
// function value plus capability flags. The user function must satisfy
// an Operator's four invariants — no future-peeking, range discipline,
// batch consistency, determinism — the engine has no way to check this
// and will not try.
type ExternalOperator struct {
	key      string
	flags    Flags
	apply    func(state any, t block.Timestamp, xs []any) (any, bool)
	newState func() any
}

// NewExternalOperator builds an Op wrapping a user function. key must be
// unique and stable for a given (apply, flags) pairing — since Go
// function values are not comparable, the caller supplies the
// structural identity explicitly rather than the engine deriving one.
// newState may be nil, in which case NewState returns nil (appropriate
// for flags.StatelessOperator).
func NewExternalOperator(
	key string,
	flags Flags,
	apply func(state any, t block.Timestamp, xs []any) (any, bool),
	newState func() any,
) Operator {
	if apply == nil {
		panic("op: NewExternalOperator(apply=nil)")
	}

	return &ExternalOperator{key: key, flags: flags, apply: apply, newState: newState}
}

func (e *ExternalOperator) Key() string  { return e.key }
func (e *ExternalOperator) Flags() Flags { return e.flags }

func (e *ExternalOperator) NewState() any {
	if e.newState == nil {
		return nil
	}

	return e.newState()
}

func (e *ExternalOperator) Apply(state any, t block.Timestamp, xs []any) (any, bool) {
	return e.apply(state, t, xs)
}

// ExternalSource adapts a user-supplied source callable `(t_start,
// t_end, session_state) -> Block{T}` into the Source shape.
type ExternalSource struct {
	key      string
	flags    Flags
	run      func(state any, tStart, tEnd block.Timestamp) block.Block[any]
	newState func() any
}

// NewExternalSource builds a Source wrapping a user-supplied adapter.
func NewExternalSource(
	key string,
	flags Flags,
	run func(state any, tStart, tEnd block.Timestamp) block.Block[any],
	newState func() any,
) Source {
	if run == nil {
		panic("op: NewExternalSource(run=nil)")
	}

	return &ExternalSource{key: key, flags: flags, run: run, newState: newState}
}

func (e *ExternalSource) Key() string  { return e.key }
func (e *ExternalSource) Flags() Flags { return e.flags }

func (e *ExternalSource) NewState() any {
	if e.newState == nil {
		return nil
	}

	return e.newState()
}

func (e *ExternalSource) Run(state any, tStart, tEnd block.Timestamp) block.Block[any] {
	return e.run(state, tStart, tEnd)
}

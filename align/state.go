package align

import "github.com/katalvlaran/chronon/op"

// State is the alignment bookkeeping threaded across batches for one
// Union- or Left-aligned node: the latest observed value and a validity
// bit per input. Intersect-aligned nodes still get a State (the
// scheduler allocates one per node uniformly) but Run ignores it.
type State struct {
	policy op.AlignPolicy
	latest []any
	valid  []bool
}

// NewState builds a State for n inputs under policy. initials may be
// nil (no seeding) or hold one op.Initial per input — entry 0 is
// ignored for Left (the anchor has no validity concept) and for
// Intersect (ignored entirely).
func NewState(policy op.AlignPolicy, n int, initials []op.Initial) *State {
	st := &State{policy: policy, latest: make([]any, n), valid: make([]bool, n)}
	for i := 0; i < n && i < len(initials); i++ {
		if initials[i].Has {
			st.latest[i] = initials[i].Value
			st.valid[i] = true
		}
	}

	return st
}

// CloneState deep-copies s. Implements engine's Cloner escape hatch, so
// Duplicate copies alignment bookkeeping directly rather than through
// its generic reflection walk.
func (s *State) CloneState() any {
	return &State{
		policy: s.policy,
		latest: append([]any(nil), s.latest...),
		valid:  append([]bool(nil), s.valid...),
	}
}

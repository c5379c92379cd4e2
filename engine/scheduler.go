package engine

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
)

// EvaluateUntil advances sess through [current_time, tEnd), walking the
// ancestor set in topological order exactly once per call. The
// per-batch input/output buffer is allocated fresh each call and
// dropped at return, so intermediate blocks are released as soon as
// this batch's children have consumed them.
//
// If an Operator, Combiner, or Reshaper panics mid-walk — the engine's
// only channel for a "runtime error in user code", since none of those
// shapes return a Go error — sess is marked poisoned and the panic is
// re-raised unchanged; sess must not be reused afterward.
func (Scheduler) EvaluateUntil(sess *Session, tEnd block.Timestamp) (err error) {
	if sess.poisoned {
		return ErrSessionPoisoned
	}
	if tEnd < sess.currentTime {
		return ErrBadInterval
	}

	defer func() {
		if r := recover(); r != nil {
			sess.poisoned = true
			panic(r)
		}
	}()

	tStart := sess.currentTime
	batch := make([]block.Block[any], len(sess.nodes))
	for i, n := range sess.nodes {
		batch[i] = computeNode(n, i, sess, batch, tStart, tEnd)
		if j, ok := sess.requestedAt[n]; ok {
			sess.outputs[j] = block.Concat(sess.outputs[j], batch[i])
		}
	}
	sess.currentTime = tEnd

	return nil
}

// Evaluate is the one-shot driver: it starts a fresh session at t0,
// then calls EvaluateUntil once for [t0, t1) when
// batchInterval is nil, or repeatedly in batchInterval-sized steps
// (the last step clamped to t1) otherwise. It returns the concatenated
// output for every requested node.
func (s Scheduler) Evaluate(
	requested []*graph.Node,
	t0, t1 block.Timestamp,
	batchInterval *block.Duration,
) (map[*graph.Node]block.Block[any], error) {
	if batchInterval != nil && *batchInterval <= 0 {
		return nil, ErrNonPositiveBatch
	}

	sess, err := s.StartAt(requested, t0)
	if err != nil {
		return nil, err
	}

	if batchInterval == nil {
		if err := s.EvaluateUntil(sess, t1); err != nil {
			return nil, err
		}
	} else {
		t := t0
		for t < t1 {
			t = t.Add(*batchInterval)
			if t > t1 {
				t = t1
			}
			if err := s.EvaluateUntil(sess, t); err != nil {
				return nil, err
			}
		}
	}

	out := make(map[*graph.Node]block.Block[any], len(requested))
	for _, n := range requested {
		out[n] = sess.Output(n)
	}

	return out, nil
}

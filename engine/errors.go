package engine

import "errors"

// Sentinel errors for session construction and evaluation.
var (
	// ErrBadInterval indicates evaluate_until was called with an end time
	// before the session's current time.
	ErrBadInterval = errors.New("engine: end time precedes current time")

	// ErrSessionPoisoned indicates a Session is being reused after a
	// prior batch's Operator, Combiner, or Reshaper panicked or some
	// other state-corrupting invariant was violated. The engine never
	// retries; the caller must start a fresh session from t_start and
	// replay.
	ErrSessionPoisoned = errors.New("engine: session is poisoned and must not be reused")

	// ErrUnknownOpShape indicates a Node's Op implements none of Source,
	// Operator, Combiner, or Reshaper — a bug, since every Op obtained
	// through package graph must implement exactly one.
	ErrUnknownOpShape = errors.New("engine: op implements no known node shape")

	// ErrNonPositiveBatch indicates Evaluate was called with a
	// batch_interval <= 0, which would never advance current_time.
	ErrNonPositiveBatch = errors.New("engine: batch_interval must be positive")
)

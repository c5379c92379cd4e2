// Package block defines the engine's fundamental data carrier: an
// immutable, strictly time-ordered sequence of (timestamp, value) pairs.
//
// A Block[T] never mutates once built. Operators receive blocks by value
// and must treat the backing arrays as read-only; Slice returns either a
// view into the same backing arrays or, for the whole-range case, the
// exact same Block (pointer-equal times/values), so callers can use a
// cheap identity check to detect "nothing changed" between batches.
//
// Timestamps carry millisecond precision and are totally ordered; within
// a single Block they are strictly increasing, never equal, never out of
// order. That invariant is enforced by the checked constructors and is
// assumed without re-validation everywhere else in the engine — internal
// callers that can prove it by construction use NewUnchecked instead of
// paying for a second scan.
package block

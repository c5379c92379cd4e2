// Package synth generates small, deterministic synthetic knot series for
// tests and benchmarks elsewhere in the module. It is not a production
// source adapter — callers wanting a real external feed should wrap it
// with op.NewExternalSource instead (see package op).
//
// Every generator here takes an explicit seed and uses only
// math/rand seeded from it, so a given (n, seed, parameters) tuple
// always reproduces byte-identical output, matching the determinism
// every built-in Source and Operator in this engine is required to
// uphold, for the fixtures built on top of it.
package synth

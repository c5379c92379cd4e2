// Package chronon is an in-memory engine for building and evaluating
// time-series computational graphs in Go.
//
// A chronon graph is a DAG of typed blocks — finite runs of (timestamp,
// value) knots — wired together by alignment-aware operators: sums,
// windows, lags, merges, joins, reductions. Build the graph once with
// the generic constructors in ops, then drive it forward in time with
// an engine.Scheduler, which can replay the same graph incrementally,
// batch by batch, or fork a running session via Duplicate to explore
// two futures from one present.
//
// Everything is organized under subpackages:
//
//	block/    — the Knot[T]/Block[T] value types every node exchanges
//	op/       — the sealed Op shapes (Source, Operator, Combiner, Reshaper)
//	graph/    — the DAG: Node, structural dedup, constant folding
//	topo/     — ancestor discovery and topological ordering
//	align/    — the Union/Left/Intersect alignment kernel
//	scaffold/ — reusable windowed/cumulative accumulator plumbing
//	ops/      — the built-in operator library (lag, merge, reduce, ...)
//	engine/   — Session, Scheduler: the thing that actually runs a graph
//
// Quick example — a 2-wide moving sum over a Union-aligned pair:
//
//	x := ops.FromBlock(xs)
//	y := ops.FromBlock(ys)
//	both, _ := ops.Align(x, y)
//	sum, _ := ops.SumWindow[float64](both, 2, false)
//
//	var sched engine.Scheduler
//	out, err := sched.Evaluate([]*graph.Node{sum}, t0, t1, nil)
package chronon

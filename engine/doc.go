// Package engine drives evaluation over a graph of Nodes: given a set
// of requested outputs and a time range, it computes the ancestor set in
// topological order once (Session.nodes), then walks that fixed order
// once per batch, dispatching each node to whichever of the four node
// shapes (Source, Operator, Combiner, Reshaper) its Op implements.
//
// A Session owns every piece of mutable per-node state exclusively; two
// Sessions over the same (immutable) graph may run concurrently so long
// as they do not share a Session. Duplicate clones that mutable state
// so a caller can fork a running session — e.g. to try two
// continuations from the same point — without resharing it.
package engine

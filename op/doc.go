// Package op defines the operation descriptor: the hashable, equatable
// value every Node carries that says what to compute, as opposed to
// package graph's Node, which says where it sits in the DAG.
//
// An Op is modeled the way the engine's design favors dynamic dispatch
// over concrete-type switches: a small sealed set of shapes (Source,
// Operator, Combiner, Reshaper) plus capability Flags the alignment kernel and the identity
// map's constant folder inspect directly, so hot loops stay monomorphic
// for built-in ops and there is a single extension point — implement
// Source or Operator yourself — for user-defined ones.
//
// Op values themselves are type-erased (methods take/return any) so
// that package graph's Node can hold heterogeneous operations without
// the DAG itself being generic. Type safety lives at the edges: the
// generic constructors in package ops box and unbox values via
// block.ToAny / block.FromAny.
package op

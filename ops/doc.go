// Package ops is the public, generic surface over the type-erased
// engine: one constructor per built-in operation family, each boxing
// its typed arguments down to package op's any-based shapes and
// obtaining the resulting Node through package graph's identity map.
//
// Source constructors (Constant, EmptyNode, FromBlock) are generic
// over the value type T they carry. Structural operations downstream of
// a source — lag, merge, filtering, sampling, alignment — operate on
// already type-erased *graph.Node values and take no type parameter.
// The numeric reduction family (Sum, Mean, Var, Std, Cov, Cor, EMA and
// the windowed variants) is generic over a block.Float type T, which
// names the type its operator unboxes each input value to.
package ops

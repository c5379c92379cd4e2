package align

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/op"
)

// Run aligns inputs per st's policy and invokes operator once per
// merged output time, threading opState (the operator's own per-node
// state, independent of the alignment bookkeeping in st) through every
// call. Run takes no batch bounds: every input block is already
// confined to the batch interval by the scheduler, and every output time
// is one of the input times, so range discipline holds without them.
//
// Complexity: O(sum of input lengths) in all three policies.
func Run(st *State, operator op.Operator, opState any, inputs []block.Block[any]) block.Block[any] {
	if len(inputs) == 0 {
		return block.Empty[any]()
	}
	if fastPathEligible(inputs) {
		return runFastPath(st, operator, opState, inputs)
	}

	switch st.policy {
	case op.Intersect:
		return runIntersect(operator, opState, inputs)
	case op.Left:
		return runLeft(st, operator, opState, inputs)
	default:
		return runUnion(st, operator, opState, inputs)
	}
}

// fastPathEligible reports whether every input shares the exact same
// backing time vector as the first, letting the kernel skip the merge
// entirely and zip values straight across. Uses block.EqualTimes, a
// constant-time check.
func fastPathEligible(inputs []block.Block[any]) bool {
	for i := 1; i < len(inputs); i++ {
		if !block.EqualTimes(inputs[0], inputs[i]) {
			return false
		}
	}

	return true
}

// runFastPath applies operator element-wise when every input ticks at
// exactly the same times, skipping the merge loop entirely. It also
// brings st's bookkeeping up to date (as if the full merge loop had run
// to completion) so a later batch that is NOT fast-path-eligible sees
// correct validity state.
func runFastPath(st *State, operator op.Operator, opState any, inputs []block.Block[any]) block.Block[any] {
	n := inputs[0].Len()
	times := make([]block.Timestamp, 0, n)
	values := make([]any, 0, n)
	xs := make([]any, len(inputs))

	for i := 0; i < n; i++ {
		t := inputs[0].Times()[i]
		for j, in := range inputs {
			xs[j] = in.Values()[i]
		}
		if out, ok := operator.Apply(opState, t, xs); ok {
			times = append(times, t)
			values = append(values, out)
		}
	}

	if n > 0 && st.policy != op.Intersect {
		for j, in := range inputs {
			st.latest[j] = in.Values()[n-1]
			st.valid[j] = true
		}
	}

	return block.NewUnchecked(times, values)
}

func runIntersect(operator op.Operator, opState any, inputs []block.Block[any]) block.Block[any] {
	k := len(inputs)
	idx := make([]int, k)
	capHint := 0
	for _, in := range inputs {
		capHint += in.Len()
	}
	times := make([]block.Timestamp, 0, capHint)
	values := make([]any, 0, capHint)

	for {
		remaining := true
		for i := 0; i < k; i++ {
			if idx[i] >= inputs[i].Len() {
				remaining = false
				break
			}
		}
		if !remaining {
			break
		}

		maxT := inputs[0].Times()[idx[0]]
		for i := 1; i < k; i++ {
			if t := inputs[i].Times()[idx[i]]; t > maxT {
				maxT = t
			}
		}

		allEqual := true
		for i := 0; i < k; i++ {
			if inputs[i].Times()[idx[i]] != maxT {
				allEqual = false
			}
		}

		if allEqual {
			xs := make([]any, k)
			for i := 0; i < k; i++ {
				xs[i] = inputs[i].Values()[idx[i]]
				idx[i]++
			}
			if out, ok := operator.Apply(opState, maxT, xs); ok {
				times = append(times, maxT)
				values = append(values, out)
			}
			continue
		}

		for i := 0; i < k; i++ {
			if inputs[i].Times()[idx[i]] < maxT {
				idx[i]++
			}
		}
	}

	return block.NewUnchecked(times, values)
}

func runUnion(st *State, operator op.Operator, opState any, inputs []block.Block[any]) block.Block[any] {
	k := len(inputs)
	idx := make([]int, k)
	capHint := 0
	for _, in := range inputs {
		capHint += in.Len()
	}
	times := make([]block.Timestamp, 0, capHint)
	values := make([]any, 0, capHint)

	for {
		hasNext := false
		var minT block.Timestamp
		for i := 0; i < k; i++ {
			if idx[i] < inputs[i].Len() {
				if t := inputs[i].Times()[idx[i]]; !hasNext || t < minT {
					minT = t
					hasNext = true
				}
			}
		}
		if !hasNext {
			break
		}

		for i := 0; i < k; i++ {
			if idx[i] < inputs[i].Len() && inputs[i].Times()[idx[i]] == minT {
				st.latest[i] = inputs[i].Values()[idx[i]]
				st.valid[i] = true
				idx[i]++
			}
		}

		allValid := true
		for i := 0; i < k; i++ {
			if !st.valid[i] {
				allValid = false
				break
			}
		}
		if !allValid {
			continue
		}

		xs := make([]any, k)
		copy(xs, st.latest)
		if out, ok := operator.Apply(opState, minT, xs); ok {
			times = append(times, minT)
			values = append(values, out)
		}
	}

	return block.NewUnchecked(times, values)
}

func runLeft(st *State, operator op.Operator, opState any, inputs []block.Block[any]) block.Block[any] {
	k := len(inputs)
	anchor := inputs[0]
	nonAnchorIdx := make([]int, k)

	times := make([]block.Timestamp, 0, anchor.Len())
	values := make([]any, 0, anchor.Len())

	for ai := 0; ai < anchor.Len(); ai++ {
		anchorT := anchor.Times()[ai]

		for j := 1; j < k; j++ {
			in := inputs[j]
			for nonAnchorIdx[j] < in.Len() && in.Times()[nonAnchorIdx[j]] <= anchorT {
				st.latest[j] = in.Values()[nonAnchorIdx[j]]
				st.valid[j] = true
				nonAnchorIdx[j]++
			}
		}

		allValid := true
		for j := 1; j < k; j++ {
			if !st.valid[j] {
				allValid = false
				break
			}
		}
		if !allValid {
			continue
		}

		xs := make([]any, k)
		xs[0] = anchor.Values()[ai]
		for j := 1; j < k; j++ {
			xs[j] = st.latest[j]
		}
		if out, ok := operator.Apply(opState, anchorT, xs); ok {
			times = append(times, anchorT)
			values = append(values, out)
		}
	}

	return block.NewUnchecked(times, values)
}

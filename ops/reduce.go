package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
	"github.com/katalvlaran/chronon/scaffold"
)

// typeKey tags a generic reducer's structural key with its value type,
// so e.g. Sum[float32] and Sum[float64] over the same parent never
// collide in the identity map despite sharing a base name.
func typeKey[T any](name string) string {
	var zero T

	return fmt.Sprintf("%s:%T", name, zero)
}

// Sum emits the running total of every value x has produced so far.
func Sum[T block.Float](x *graph.Node) *graph.Node {
	inc := scaffold.NewInception[T, T, T](
		typeKey[T]("sum"),
		func(v T) T { return v },
		func(acc T, v T) T { return acc + v },
		func(acc T) T { return acc },
		nil, true,
	)

	return graph.Obtain([]*graph.Node{x}, inc)
}

// SumWindow emits the total of the last n values of x. Returns
// op.ErrNegativeWindow for n < 1.
func SumWindow[T block.Float](x *graph.Node, n int, emitEarly bool) (*graph.Node, error) {
	if n < 1 {
		return nil, op.ErrNegativeWindow
	}
	w, err := scaffold.NewWindow[T, T, T](
		fmt.Sprintf("%s(%d)", typeKey[T]("sum_window"), n), n,
		func(acc T, v T) T { return acc + v },
		func(acc T, v T) T { return acc - v },
		func(acc T, _ int) T { return acc },
		emitEarly,
	)
	if err != nil {
		return nil, err
	}

	return graph.Obtain([]*graph.Node{x}, w), nil
}

// meanAcc is the invertible accumulator shared by Mean and MeanWindow:
// a running sum plus the count of values folded into it.
type meanAcc[T block.Float] struct {
	sum T
	n   int
}

// Mean emits the running average of every value x has produced so far.
func Mean[T block.Float](x *graph.Node) *graph.Node {
	inc := scaffold.NewInception[T, meanAcc[T], T](
		typeKey[T]("mean"),
		func(v T) meanAcc[T] { return meanAcc[T]{sum: v, n: 1} },
		func(acc meanAcc[T], v T) meanAcc[T] { return meanAcc[T]{sum: acc.sum + v, n: acc.n + 1} },
		func(acc meanAcc[T]) T { return acc.sum / T(acc.n) },
		nil, true,
	)

	return graph.Obtain([]*graph.Node{x}, inc)
}

// MeanWindow emits the average of the last n values of x. Returns
// op.ErrNegativeWindow for n < 1.
func MeanWindow[T block.Float](x *graph.Node, n int, emitEarly bool) (*graph.Node, error) {
	if n < 1 {
		return nil, op.ErrNegativeWindow
	}
	w, err := scaffold.NewWindow[T, meanAcc[T], T](
		fmt.Sprintf("%s(%d)", typeKey[T]("mean_window"), n), n,
		func(acc meanAcc[T], v T) meanAcc[T] { return meanAcc[T]{sum: acc.sum + v, n: acc.n + 1} },
		func(acc meanAcc[T], v T) meanAcc[T] { return meanAcc[T]{sum: acc.sum - v, n: acc.n - 1} },
		func(acc meanAcc[T], _ int) T {
			if acc.n == 0 {
				return 0
			}

			return acc.sum / T(acc.n)
		},
		emitEarly,
	)
	if err != nil {
		return nil, err
	}

	return graph.Obtain([]*graph.Node{x}, w), nil
}

// welfordAcc is the invertible accumulator for Var/Std: count, running
// mean, and M2 (sum of squared deviations from the running mean), per
// Welford's online algorithm.
type welfordAcc[T block.Float] struct {
	n    int
	mean T
	m2   T
}

func welfordAdd[T block.Float](acc welfordAcc[T], v T) welfordAcc[T] {
	acc.n++
	delta := v - acc.mean
	acc.mean += delta / T(acc.n)
	acc.m2 += delta * (v - acc.mean)

	return acc
}

// welfordSub reverses welfordAdd, restoring the accumulator to what it
// was before v was folded in. This is Welford's algorithm run backward:
// valid because every quantity it touches is invertible arithmetic, not
// because variance itself is naturally invertible.
func welfordSub[T block.Float](acc welfordAcc[T], v T) welfordAcc[T] {
	if acc.n <= 1 {
		return welfordAcc[T]{}
	}
	meanBefore := (T(acc.n)*acc.mean - v) / T(acc.n-1)
	acc.m2 -= (v - meanBefore) * (v - acc.mean)
	acc.n--
	acc.mean = meanBefore

	return acc
}

func variance[T block.Float](acc welfordAcc[T]) T {
	if acc.n < 2 {
		return 0
	}

	return acc.m2 / T(acc.n-1)
}

// Var emits the running sample variance of x, starting once at least
// two knots have been seen.
func Var[T block.Float](x *graph.Node) *graph.Node {
	inc := scaffold.NewInception[T, welfordAcc[T], T](
		typeKey[T]("var"),
		func(v T) welfordAcc[T] { return welfordAdd(welfordAcc[T]{}, v) },
		welfordAdd[T],
		variance[T],
		func(_ welfordAcc[T], seen int) bool { return seen >= 2 },
		false,
	)

	return graph.Obtain([]*graph.Node{x}, inc)
}

// VarWindow emits the sample variance over the last n values of x.
// Returns op.ErrNegativeWindow for n < 2: a sample variance over a
// single sample is undefined, not zero, so it is rejected at
// construction rather than silently emitting a meaningless value.
func VarWindow[T block.Float](x *graph.Node, n int, emitEarly bool) (*graph.Node, error) {
	if n < 2 {
		return nil, op.ErrNegativeWindow
	}
	w, err := scaffold.NewWindow[T, welfordAcc[T], T](
		fmt.Sprintf("%s(%d)", typeKey[T]("var_window"), n), n,
		welfordAdd[T], welfordSub[T],
		func(acc welfordAcc[T], _ int) T { return variance(acc) },
		emitEarly,
	)
	if err != nil {
		return nil, err
	}

	return graph.Obtain([]*graph.Node{x}, w), nil
}

// Std emits the running sample standard deviation of x.
func Std[T block.Float](x *graph.Node) *graph.Node {
	inc := scaffold.NewInception[T, welfordAcc[T], T](
		typeKey[T]("std"),
		func(v T) welfordAcc[T] { return welfordAdd(welfordAcc[T]{}, v) },
		welfordAdd[T],
		func(acc welfordAcc[T]) T { return sqrtT(variance(acc)) },
		func(_ welfordAcc[T], seen int) bool { return seen >= 2 },
		false,
	)

	return graph.Obtain([]*graph.Node{x}, inc)
}

// StdWindow emits the sample standard deviation over the last n values
// of x. Returns op.ErrNegativeWindow for n < 2.
func StdWindow[T block.Float](x *graph.Node, n int, emitEarly bool) (*graph.Node, error) {
	if n < 2 {
		return nil, op.ErrNegativeWindow
	}
	w, err := scaffold.NewWindow[T, welfordAcc[T], T](
		fmt.Sprintf("%s(%d)", typeKey[T]("std_window"), n), n,
		welfordAdd[T], welfordSub[T],
		func(acc welfordAcc[T], _ int) T { return sqrtT(variance(acc)) },
		emitEarly,
	)
	if err != nil {
		return nil, err
	}

	return graph.Obtain([]*graph.Node{x}, w), nil
}

func sqrtT[T block.Float](v T) T { return T(math.Sqrt(float64(v))) }

// bivariateAcc is the running-covariance accumulator shared by Cov and
// Cor: counts and per-series means plus the co-moment and each series'
// own M2, enough to derive both covariance and Pearson correlation.
type bivariateAcc[T block.Float] struct {
	n     int
	meanX T
	meanY T
	c     T // co-moment
	m2x   T
	m2y   T
}

func bivariateAdd[T block.Float](acc bivariateAcc[T], x, y T) bivariateAcc[T] {
	acc.n++
	dx := x - acc.meanX
	acc.meanX += dx / T(acc.n)
	dy := y - acc.meanY
	acc.meanY += dy / T(acc.n)
	acc.c += dx * (y - acc.meanY)
	acc.m2x += dx * (x - acc.meanX)
	acc.m2y += dy * (y - acc.meanY)

	return acc
}

// Cov emits the running sample covariance of x and y, aligned under
// Union policy, starting once at least two aligned pairs have ticked.
func Cov[T block.Float](x, y *graph.Node) *graph.Node {
	return graph.Obtain([]*graph.Node{x, y}, bivariateOp[T]{kind: "cov"})
}

// Cor emits the running Pearson correlation coefficient of x and y,
// aligned under Union policy.
func Cor[T block.Float](x, y *graph.Node) *graph.Node {
	return graph.Obtain([]*graph.Node{x, y}, bivariateOp[T]{kind: "cor"})
}

type bivariateOp[T block.Float] struct{ kind string }

func (o bivariateOp[T]) Key() string { return typeKey[T](o.kind) }
func (bivariateOp[T]) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: false, TimeAgnostic: true, Align: op.Union}
}
func (bivariateOp[T]) NewState() any { return &bivariateAcc[T]{} }

func (o bivariateOp[T]) Apply(state any, _ block.Timestamp, xs []any) (any, bool) {
	st := state.(*bivariateAcc[T])
	*st = bivariateAdd(*st, xs[0].(T), xs[1].(T))
	if st.n < 2 {
		return nil, false
	}

	if o.kind == "cov" {
		return st.c / T(st.n-1), true
	}

	denom := sqrtT(st.m2x * st.m2y)
	if denom == 0 {
		return T(0), true
	}

	return st.c / denom, true
}

// EMA emits an exponential moving average of x with smoothing factor
// alpha, seeded by x's first value. Returns op.ErrNegativeWindow for
// alpha outside (0, 1].
func EMA[T block.Float](x *graph.Node, alpha T) (*graph.Node, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, op.ErrNegativeWindow
	}
	inc := scaffold.NewInception[T, T, T](
		fmt.Sprintf("%s(%v)", typeKey[T]("ema"), alpha),
		func(v T) T { return v },
		func(acc T, v T) T { return alpha*v + (1-alpha)*acc },
		func(acc T) T { return acc },
		nil, true,
	)

	return graph.Obtain([]*graph.Node{x}, inc), nil
}

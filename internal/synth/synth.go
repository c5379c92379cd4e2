package synth

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/chronon/block"
)

// Default amplitude and noise parameters, mirrored after the flat
// package-level defaults the builders pattern uses for its generators.
const (
	defAmp   = 1.0
	defSigma = 0.0
	defFreq  = 0.05
)

// Walk generates a discrete random walk of n knots at timestamps start,
// start+step, start+2*step, ...: value[0] = 0, value[i] = value[i-1] +
// rng.NormFloat64()*sigma. Deterministic for a
// given (n, seed, sigma): rng is always freshly seeded from seed, never
// shared process-global state.
//
// Returns the empty Block if n <= 0.
func Walk(n int, seed int64, sigma float64, start block.Timestamp, step block.Duration) block.Block[float64] {
	if n <= 0 {
		return block.Empty[float64]()
	}
	rng := rand.New(rand.NewSource(seed))

	times := make([]block.Timestamp, n)
	values := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		if i > 0 {
			v += rng.NormFloat64() * sigma
		}
		times[i] = start + block.Timestamp(int64(step)*int64(i))
		values[i] = v
	}

	return block.NewUnchecked(times, values)
}

// Sine generates n knots of amp*sin(2*pi*freq*i) plus optional Gaussian
// noise (sigma), at timestamps start, start+step, ... . freq is in
// cycles per knot. Deterministic for a given (n, seed, freq, amp, sigma).
//
// Returns the empty Block if n <= 0.
func Sine(n int, seed int64, freq, amp, sigma float64, start block.Timestamp, step block.Duration) block.Block[float64] {
	if n <= 0 {
		return block.Empty[float64]()
	}
	if amp == 0 {
		amp = defAmp
	}
	rng := rand.New(rand.NewSource(seed))

	const tau = 2.0 * math.Pi
	times := make([]block.Timestamp, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v := amp * math.Sin(tau*freq*float64(i))
		if sigma > 0 {
			v += rng.NormFloat64() * sigma
		}
		times[i] = start + block.Timestamp(int64(step)*int64(i))
		values[i] = v
	}

	return block.NewUnchecked(times, values)
}

// Chirp generates a linear frequency sweep from f0 to f1 (cycles per
// knot) over n knots, amplitude amp, plus optional Gaussian noise sigma —
// the same sweep-plus-noise shape used for chirp fixtures in the builder
// corpus this package is grounded on, adapted to knot timestamps instead
// of a raw sample slice.
//
// Returns the empty Block if n <= 0.
func Chirp(n int, seed int64, f0, f1, amp, sigma float64, start block.Timestamp, step block.Duration) block.Block[float64] {
	if n <= 0 {
		return block.Empty[float64]()
	}
	if amp == 0 {
		amp = defAmp
	}
	rng := rand.New(rand.NewSource(seed))

	const tau = 2.0 * math.Pi
	times := make([]block.Timestamp, n)
	values := make([]float64, n)
	var theta float64
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(maxInt(n-1, 1))
		freq := f0 + (f1-f0)*frac
		theta += tau * freq
		v := amp * math.Sin(theta)
		if sigma > 0 {
			v += rng.NormFloat64() * sigma
		}
		times[i] = start + block.Timestamp(int64(step)*int64(i))
		values[i] = v
	}

	return block.NewUnchecked(times, values)
}

// Spike scatters m one-off impulses of height amp at random knot
// positions among n, zero elsewhere — useful for exercising throttle,
// skip_missing and history against sparse, bursty input. Positions and
// signs are drawn from rng, so the same seed always scatters the same
// spikes.
//
// Returns the empty Block if n <= 0. m is clamped to n.
func Spike(n int, seed int64, m int, amp float64, start block.Timestamp, step block.Duration) block.Block[float64] {
	if n <= 0 {
		return block.Empty[float64]()
	}
	if amp == 0 {
		amp = defAmp
	}
	if m > n {
		m = n
	}
	rng := rand.New(rand.NewSource(seed))

	times := make([]block.Timestamp, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = start + block.Timestamp(int64(step)*int64(i))
	}
	for k := 0; k < m; k++ {
		idx := rng.Intn(n)
		sign := 1.0
		if rng.Float64() < 0.5 {
			sign = -1.0
		}
		values[idx] += sign * amp
	}

	return block.NewUnchecked(times, values)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

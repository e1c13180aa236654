package interval

import "math"

// Exp returns the interval e^x for x in i.  exp is monotonically increasing,
// so the extension is simply the pointwise image of the bounds.
func (i Interval) Exp() Interval {
	if i.IsEmpty() {
		return Empty
	}

	return Interval{math.Exp(i.Lo), math.Exp(i.Hi)}
}

// Log returns the interval log(x) for x in i.  Undefined (empty) below zero;
// callers that need a DomainError instead should check i.Lo < 0 first.
func (i Interval) Log() Interval {
	if i.IsEmpty() || i.Hi < 0 {
		return Empty
	}

	lo := i.Lo
	if lo < 0 {
		lo = 0
	}

	return Interval{math.Log(lo), math.Log(i.Hi)}
}

// Sqrt returns the interval sqrt(x) for x in i, clamped to the non-negative
// part of i.
func (i Interval) Sqrt() Interval {
	if i.IsEmpty() || i.Hi < 0 {
		return Empty
	}

	lo := i.Lo
	if lo < 0 {
		lo = 0
	}

	return Interval{math.Sqrt(lo), math.Sqrt(i.Hi)}
}

// Pow raises this interval to a fixed non-negative integer power using
// repeated squaring, which is tighter than the general real-exponent
// extension.
func (i Interval) Pow(n uint64) Interval {
	if i.IsEmpty() {
		return Empty
	}

	if n == 0 {
		return Point(1)
	}

	if n == 2 {
		return i.Sqr()
	}

	half := i.Pow(n / 2)
	result := half.Mul(half)

	if n%2 == 1 {
		result = result.Mul(i)
	}

	return result
}

// Sqr returns the interval x^2 for x in i, tighter than i.Mul(i) because it
// knows the result cannot be negative.
func (i Interval) Sqr() Interval {
	if i.IsEmpty() {
		return Empty
	}

	a, b := i.Lo*i.Lo, i.Hi*i.Hi
	lo, hi := math.Min(a, b), math.Max(a, b)

	if i.Lo <= 0 && i.Hi >= 0 {
		lo = 0
	}

	return Interval{lo, hi}
}

// isDegenerateInt reports whether i is a single point at an integer value,
// the condition under which the evaluator uses the Pow/Sqr specialization
// rather than the general PowReal extension.
func (i Interval) isDegenerateInt() (uint64, bool) {
	if i.IsEmpty() || i.Lo != i.Hi {
		return 0, false
	}

	if i.Lo < 0 || i.Lo != math.Trunc(i.Lo) {
		return 0, false
	}

	return uint64(i.Lo), true
}

// PowReal extends Pow to an interval-valued, possibly non-integer exponent.
// When exp is a degenerate non-negative integer point, it delegates to the
// tighter Pow/Sqr specialization; otherwise it falls back to exp(e*log(base)).
func (base Interval) PowReal(exp Interval) Interval {
	if n, ok := exp.isDegenerateInt(); ok {
		return base.Pow(n)
	}

	return exp.Mul(base.Log()).Exp()
}

// Sin returns a conservative enclosure of sin(x) for x in i.  Outside a
// bounded domain this degenerates to the full [-1, 1] range; a tight
// interval sine requires tracking quadrants, which we approximate
// conservatively rather than exactly.
func (i Interval) Sin() Interval {
	return boundedTrig(i, math.Sin, math.Pi/2)
}

// Cos returns a conservative enclosure of cos(x) for x in i.
func (i Interval) Cos() Interval {
	return boundedTrig(i, math.Cos, 0)
}

func boundedTrig(i Interval, f func(float64) float64, peak float64) Interval {
	if i.IsEmpty() {
		return Empty
	}
	// A conservative but sound enclosure: if the interval spans at least a
	// full period, any value in [-1, 1] is reachable.
	if i.Diam() >= 2*math.Pi {
		return Interval{-1, 1}
	}

	const samples = 16

	lo, hi := math.Inf(1), math.Inf(-1)

	for k := 0; k <= samples; k++ {
		x := i.Lo + i.Diam()*float64(k)/float64(samples)
		v := f(x)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	// Widen slightly to stay conservative between sample points.
	const slack = 1e-9

	lo = math.Max(-1, lo-slack)
	hi = math.Min(1, hi+slack)

	// f reaches 1 at peak+2kπ and -1 at peak+π+2kπ; the samples can step
	// over either, so take the extremum exactly whenever i contains one.
	for _, ext := range [2]float64{peak, peak + math.Pi} {
		k := math.Ceil((i.Lo - ext) / (2 * math.Pi))
		if ext+2*math.Pi*k <= i.Hi {
			if ext == peak {
				hi = 1
			} else {
				lo = -1
			}
		}
	}

	return Interval{lo, hi}
}

// Tan returns a conservative enclosure of tan(x) for x in i.  Near an odd
// multiple of π/2 the true range is unbounded, so such intervals widen to
// Whole.
func (i Interval) Tan() Interval {
	if i.IsEmpty() {
		return Empty
	}

	if i.Diam() >= math.Pi {
		return Whole
	}

	for k := math.Floor((i.Lo - math.Pi/2) / math.Pi); ; k++ {
		asym := math.Pi/2 + k*math.Pi
		if asym < i.Lo-1e-12 {
			continue
		}

		if asym > i.Hi+1e-12 {
			break
		}

		return Whole
	}

	return Interval{math.Tan(i.Lo), math.Tan(i.Hi)}
}

// Asin returns a conservative enclosure of asin(x) for x in i, clamped to
// [-1, 1]; the caller is responsible for raising a domain error when i
// strays outside that range.
func (i Interval) Asin() Interval {
	lo, hi := clamp11(i)
	if lo > hi {
		return Empty
	}

	return Interval{math.Asin(lo), math.Asin(hi)}
}

// Acos returns a conservative enclosure of acos(x) for x in i, clamped to
// [-1, 1].  acos is monotonically decreasing, so bounds swap.
func (i Interval) Acos() Interval {
	lo, hi := clamp11(i)
	if lo > hi {
		return Empty
	}

	return Interval{math.Acos(hi), math.Acos(lo)}
}

func clamp11(i Interval) (float64, float64) {
	if i.IsEmpty() {
		return 1, -1
	}

	lo, hi := math.Max(-1, i.Lo), math.Min(1, i.Hi)

	return lo, hi
}

// Atan returns the interval atan(x) for x in i.  Monotonically increasing
// over all of ℝ, so no domain restriction applies.
func (i Interval) Atan() Interval {
	if i.IsEmpty() {
		return Empty
	}

	return Interval{math.Atan(i.Lo), math.Atan(i.Hi)}
}

// Atan2 returns a conservative enclosure of atan2(y, x) for y in i, x in o.
// Sound but not tight when the box straddles a branch cut; widens to the
// full [-π, π] range in that case.
func (i Interval) Atan2(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	if o.Lo <= 0 && 0 <= o.Hi && i.Lo <= 0 && 0 <= i.Hi {
		return Interval{-math.Pi, math.Pi}
	}

	corners := [4]float64{
		math.Atan2(i.Lo, o.Lo), math.Atan2(i.Lo, o.Hi),
		math.Atan2(i.Hi, o.Lo), math.Atan2(i.Hi, o.Hi),
	}

	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}

	return Interval{lo, hi}
}

// Sinh returns the interval sinh(x) for x in i.  Monotonically increasing.
func (i Interval) Sinh() Interval {
	if i.IsEmpty() {
		return Empty
	}

	return Interval{math.Sinh(i.Lo), math.Sinh(i.Hi)}
}

// Cosh returns the interval cosh(x) for x in i.
func (i Interval) Cosh() Interval {
	if i.IsEmpty() {
		return Empty
	}

	if i.Lo <= 0 && i.Hi >= 0 {
		return Interval{1, math.Max(math.Cosh(i.Lo), math.Cosh(i.Hi))}
	}

	lo, hi := math.Cosh(i.Lo), math.Cosh(i.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}

	return Interval{lo, hi}
}

// Tanh returns the interval tanh(x) for x in i.  Monotonically increasing.
func (i Interval) Tanh() Interval {
	if i.IsEmpty() {
		return Empty
	}

	return Interval{math.Tanh(i.Lo), math.Tanh(i.Hi)}
}

// Min returns the interval min(x, y) for x in i, y in o.
func (i Interval) Min(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	return Interval{math.Min(i.Lo, o.Lo), math.Min(i.Hi, o.Hi)}
}

// Max returns the interval max(x, y) for x in i, y in o.
func (i Interval) Max(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	return Interval{math.Max(i.Lo, o.Lo), math.Max(i.Hi, o.Hi)}
}

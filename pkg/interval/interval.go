// Package interval provides conservative interval arithmetic over float64,
// the value type the ICP engine narrows as it searches: real,
// floating-point-bounded ranges with elementary function extensions for
// the nonlinear operators the expression DAG can contain.
package interval

import (
	"math"
	"strconv"
)

// Interval represents a closed range [Lo, Hi] of real numbers.  An interval
// with Lo > Hi represents the empty set; use IsEmpty to test for it rather
// than comparing bounds directly, since NaN bounds also signal emptiness.
type Interval struct {
	Lo, Hi float64
}

// Empty is the canonical empty interval.
var Empty = Interval{Lo: math.NaN(), Hi: math.NaN()}

// Whole is the interval spanning all of ℝ.
var Whole = Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}

// Point constructs the degenerate interval containing exactly v.
func Point(v float64) Interval { return Interval{v, v} }

// New constructs the interval [lo, hi].  Panics if lo > hi (use Empty for
// the empty set, never an inverted interval).
func New(lo, hi float64) Interval {
	if lo > hi {
		panic("interval: lo > hi")
	}

	return Interval{lo, hi}
}

// IsEmpty reports whether this interval is the empty set.
func (i Interval) IsEmpty() bool {
	return math.IsNaN(i.Lo) || math.IsNaN(i.Hi) || i.Lo > i.Hi
}

// SetEmpty mutates this interval in place to the empty set.
func (i *Interval) SetEmpty() { *i = Empty }

// Diam returns the width of the interval (0 for the empty interval).
func (i Interval) Diam() float64 {
	if i.IsEmpty() {
		return 0
	}

	return i.Hi - i.Lo
}

// Mid returns the midpoint of the interval.  For an unbounded interval, it
// clamps to the largest representable finite value on the unbounded side so
// callers always get a usable point to evaluate at.
func (i Interval) Mid() float64 {
	if i.IsEmpty() {
		return math.NaN()
	}

	lo, hi := i.Lo, i.Hi
	if math.IsInf(lo, -1) {
		lo = -math.MaxFloat64
	}

	if math.IsInf(hi, 1) {
		hi = math.MaxFloat64
	}

	return lo + (hi-lo)/2
}

// IsBisectable reports whether this interval can still be split, i.e. it has
// positive, finite-enough width that a midpoint strictly between the bounds
// is representable.
func (i Interval) IsBisectable() bool {
	if i.IsEmpty() {
		return false
	}

	m := i.Mid()

	return m > i.Lo && m < i.Hi
}

// Bisect splits this interval at its midpoint into two sub-intervals whose
// union is this interval.  Panics if the interval is not IsBisectable.
func (i Interval) Bisect() (left, right Interval) {
	if !i.IsBisectable() {
		panic("interval: cannot bisect a non-bisectable interval")
	}

	m := i.Mid()

	return Interval{i.Lo, m}, Interval{m, i.Hi}
}

// Contains reports whether v lies within this interval.
func (i Interval) Contains(v float64) bool {
	return !i.IsEmpty() && i.Lo <= v && v <= i.Hi
}

// Within reports whether this interval is a subset of other.
func (i Interval) Within(other Interval) bool {
	if i.IsEmpty() {
		return true
	}

	return other.Lo <= i.Lo && i.Hi <= other.Hi
}

// Intersect returns the set intersection of two intervals.
func (i Interval) Intersect(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	lo, hi := math.Max(i.Lo, o.Lo), math.Min(i.Hi, o.Hi)
	if lo > hi {
		return Empty
	}

	return Interval{lo, hi}
}

// Hull returns the smallest interval enclosing both i and o (their union's
// convex hull), used to join branches produced by parallel contraction.
func (i Interval) Hull(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}

	if o.IsEmpty() {
		return i
	}

	return Interval{math.Min(i.Lo, o.Lo), math.Max(i.Hi, o.Hi)}
}

// Add returns the interval sum i + o.
func (i Interval) Add(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	return Interval{i.Lo + o.Lo, i.Hi + o.Hi}
}

// Neg returns the interval negation -i.
func (i Interval) Neg() Interval {
	if i.IsEmpty() {
		return Empty
	}

	return Interval{-i.Hi, -i.Lo}
}

// Sub returns the interval difference i - o.
func (i Interval) Sub(o Interval) Interval {
	return i.Add(o.Neg())
}

// Mul returns the interval product i * o.
func (i Interval) Mul(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	x1, x2 := i.Lo*o.Lo, i.Lo*o.Hi
	x3, x4 := i.Hi*o.Lo, i.Hi*o.Hi
	lo := math.Min(math.Min(x1, x2), math.Min(x3, x4))
	hi := math.Max(math.Max(x1, x2), math.Max(x3, x4))

	return Interval{lo, hi}
}

// Div returns the interval quotient i / o.  When o straddles zero, this
// yields plain Whole, since a proper two-component extended-division result
// cannot be represented by a single Interval. Dividing by the point [0, 0]
// yields Empty.
func (i Interval) Div(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty
	}

	if o.Lo <= 0 && 0 <= o.Hi {
		if o.Lo == 0 && o.Hi == 0 {
			return Empty
		}

		return Whole
	}

	return i.Mul(Interval{1 / o.Hi, 1 / o.Lo})
}

// Abs returns the interval of |x| for x in i.
func (i Interval) Abs() Interval {
	if i.IsEmpty() {
		return Empty
	}

	if i.Lo >= 0 {
		return i
	}

	if i.Hi <= 0 {
		return i.Neg()
	}

	return Interval{0, math.Max(-i.Lo, i.Hi)}
}

func (i Interval) String() string {
	if i.IsEmpty() {
		return "[]"
	}

	return "[" + ftoa(i.Lo) + ", " + ftoa(i.Hi) + "]"
}

func ftoa(v float64) string {
	if math.IsInf(v, 1) {
		return "+inf"
	}

	if math.IsInf(v, -1) {
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

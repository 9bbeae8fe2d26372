// Package interval provides intervals over ordered domains,
// and interval sets with the usual set algebra on top of them.
//
// Every operation is total: degenerate inputs such as reversed bounds
// or an open interval around a single value normalise silently
// to the canonical empty interval instead of returning an error.
// Interval and Set are immutable values, operations return new values
// and never modify their inputs, which also makes them safe to share
// between goroutines.
package interval

import (
	"go.llib.dev/intervalkit/pkg/compare"
)

// Interval is a contiguous range of values between a lower and an upper bound.
// The zero value of Interval is the empty interval.
type Interval[T Value] struct {
	lower, upper Bound[T]
}

// New returns the interval between the two given bounds.
// Bound pairs that no value could satisfy yield the canonical empty interval.
func New[T Value](lower, upper Bound[T]) Interval[T] {
	iv := Interval[T]{lower: lower, upper: upper}
	if iv.IsEmpty() {
		return Interval[T]{}
	}
	return iv
}

// Closed returns the interval [lo,hi], both boundary values included.
func Closed[T Value](lo, hi T) Interval[T] {
	return New(ClosedBound(lo), ClosedBound(hi))
}

// Open returns the interval (lo,hi), both boundary values excluded.
func Open[T Value](lo, hi T) Interval[T] {
	return New(OpenBound(lo), OpenBound(hi))
}

// ClosedOpen returns the interval [lo,hi).
func ClosedOpen[T Value](lo, hi T) Interval[T] {
	return New(ClosedBound(lo), OpenBound(hi))
}

// OpenClosed returns the interval (lo,hi].
func OpenClosed[T Value](lo, hi T) Interval[T] {
	return New(OpenBound(lo), ClosedBound(hi))
}

// Point returns the interval [v,v] that contains the single given value.
func Point[T Value](v T) Interval[T] {
	return New(ClosedBound(v), ClosedBound(v))
}

// AtLeast returns the interval [v,+inf).
func AtLeast[T Value](v T) Interval[T] {
	return New(ClosedBound(v), Unbounded[T]())
}

// GreaterThan returns the interval (v,+inf).
func GreaterThan[T Value](v T) Interval[T] {
	return New(OpenBound(v), Unbounded[T]())
}

// AtMost returns the interval (-inf,v].
func AtMost[T Value](v T) Interval[T] {
	return New(Unbounded[T](), ClosedBound(v))
}

// LessThan returns the interval (-inf,v).
func LessThan[T Value](v T) Interval[T] {
	return New(Unbounded[T](), OpenBound(v))
}

// All returns the interval (-inf,+inf) that contains every value of the domain.
func All[T Value]() Interval[T] {
	return New(Unbounded[T](), Unbounded[T]())
}

// Empty returns the canonical empty interval.
func Empty[T Value]() Interval[T] {
	return Interval[T]{}
}

// Lower returns the lower bound of the interval.
func (iv Interval[T]) Lower() Bound[T] {
	return iv.lower
}

// Upper returns the upper bound of the interval.
func (iv Interval[T]) Upper() Bound[T] {
	return iv.upper
}

// IsEmpty reports whether no value belongs to the interval.
func (iv Interval[T]) IsEmpty() bool {
	if iv.lower.unbounded || iv.upper.unbounded {
		return false
	}
	c := compare.Ordered(iv.lower.value, iv.upper.value)
	if !compare.IsEqual(c) {
		return compare.IsMore(c)
	}
	return !(iv.lower.closed && iv.upper.closed)
}

// IsZero reports whether the interval is its zero value, the empty interval.
func (iv Interval[T]) IsZero() bool {
	return iv == Interval[T]{}
}

// Contains reports whether the value satisfies both bounds of the interval.
func (iv Interval[T]) Contains(v T) bool {
	return iv.lower.admitsAsLower(v) && iv.upper.admitsAsUpper(v)
}

// Overlaps reports whether the two intervals share at least one common value.
func (iv Interval[T]) Overlaps(oth Interval[T]) bool {
	return !iv.Intersect(oth).IsEmpty()
}

// Disjoint reports whether the two intervals have no common value.
// Adjacent intervals are disjoint too.
func (iv Interval[T]) Disjoint(oth Interval[T]) bool {
	return !iv.Overlaps(oth)
}

// Adjacent reports whether the two intervals touch at a shared boundary value
// without overlapping and without leaving a gap:
// exactly one of the touching endpoints is closed, like [1,2) and [2,3].
func (iv Interval[T]) Adjacent(oth Interval[T]) bool {
	if iv.IsEmpty() || oth.IsEmpty() {
		return false
	}
	return meets(iv.upper, oth.lower) || meets(oth.upper, iv.lower)
}

// IsSubset reports whether every value of the interval is part of the other interval.
// The empty interval is a subset of everything.
func (iv Interval[T]) IsSubset(oth Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	if oth.IsEmpty() {
		return false
	}
	return compare.IsLessOrEqual(oth.lower.CompareAsLower(iv.lower)) &&
		compare.IsLessOrEqual(iv.upper.CompareAsUpper(oth.upper))
}

// IsSuperset reports whether the interval contains every value of the other interval.
func (iv Interval[T]) IsSuperset(oth Interval[T]) bool {
	return oth.IsSubset(iv)
}

// Intersect returns the widest interval that is part of both intervals.
// The result is the empty interval when the two don't overlap.
func (iv Interval[T]) Intersect(oth Interval[T]) Interval[T] {
	if iv.IsEmpty() || oth.IsEmpty() {
		return Interval[T]{}
	}
	lower := iv.lower
	if compare.IsLess(lower.CompareAsLower(oth.lower)) {
		lower = oth.lower
	}
	upper := iv.upper
	if compare.IsMore(upper.CompareAsUpper(oth.upper)) {
		upper = oth.upper
	}
	return New(lower, upper)
}

// Span returns the smallest interval that covers both intervals.
func (iv Interval[T]) Span(oth Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return oth
	}
	if oth.IsEmpty() {
		return iv
	}
	lower := iv.lower
	if compare.IsMore(lower.CompareAsLower(oth.lower)) {
		lower = oth.lower
	}
	upper := iv.upper
	if compare.IsLess(upper.CompareAsUpper(oth.upper)) {
		upper = oth.upper
	}
	return New(lower, upper)
}

// Union returns the set of values that are part of either interval.
// The result is a single atomic interval when the two intervals
// overlap or are adjacent, and a set of the two intervals otherwise.
func (iv Interval[T]) Union(oth Interval[T]) Set[T] {
	return From(iv, oth)
}

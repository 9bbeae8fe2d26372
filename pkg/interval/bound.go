package interval

import (
	"go.llib.dev/intervalkit/internal/constraints"
	"go.llib.dev/intervalkit/pkg/compare"
)

// Value is the constraint for the ordered domains an interval can be defined over.
type Value constraints.Ordered

// Bound is one endpoint of an interval.
// A bound is either closed (boundary value included), open (boundary value excluded),
// or unbounded, meaning there is no constraint on that side.
type Bound[T Value] struct {
	value     T
	closed    bool
	unbounded bool
}

// ClosedBound returns a bound that includes its boundary value.
func ClosedBound[T Value](v T) Bound[T] {
	return Bound[T]{value: v, closed: true}
}

// OpenBound returns a bound that excludes its boundary value.
func OpenBound[T Value](v T) Bound[T] {
	return Bound[T]{value: v}
}

// Unbounded returns the bound that represents the absence of a constraint.
// As a lower bound it reads as negative infinity, as an upper bound as positive infinity.
func Unbounded[T Value]() Bound[T] {
	return Bound[T]{unbounded: true}
}

// Value returns the boundary value of the bound,
// and a bool flag about whether the bound has one at all.
func (b Bound[T]) Value() (T, bool) {
	return b.value, !b.unbounded
}

// IsClosed reports whether the bound includes its boundary value.
func (b Bound[T]) IsClosed() bool {
	return !b.unbounded && b.closed
}

// IsOpen reports whether the bound excludes its boundary value.
func (b Bound[T]) IsOpen() bool {
	return !b.unbounded && !b.closed
}

// IsUnbounded reports whether the bound has no boundary value.
func (b Bound[T]) IsUnbounded() bool {
	return b.unbounded
}

// CompareAsLower orders the two bounds interpreted as lower endpoints.
// An unbounded lower endpoint sorts before every bounded one,
// and at equal boundary values the closed bound sorts before the open one,
// since [v admits the boundary value itself while (v does not.
func (b Bound[T]) CompareAsLower(oth Bound[T]) int {
	switch {
	case b.unbounded && oth.unbounded:
		return 0
	case b.unbounded:
		return -1
	case oth.unbounded:
		return 1
	}
	if c := compare.Ordered(b.value, oth.value); !compare.IsEqual(c) {
		return c
	}
	switch {
	case b.closed == oth.closed:
		return 0
	case b.closed:
		return -1
	default:
		return 1
	}
}

// CompareAsUpper orders the two bounds interpreted as upper endpoints.
// An unbounded upper endpoint sorts after every bounded one,
// and at equal boundary values the open bound sorts before the closed one,
// since v) ends just before v] does.
func (b Bound[T]) CompareAsUpper(oth Bound[T]) int {
	switch {
	case b.unbounded && oth.unbounded:
		return 0
	case b.unbounded:
		return 1
	case oth.unbounded:
		return -1
	}
	if c := compare.Ordered(b.value, oth.value); !compare.IsEqual(c) {
		return c
	}
	switch {
	case b.closed == oth.closed:
		return 0
	case b.closed:
		return 1
	default:
		return -1
	}
}

// invert flips a bounded endpoint between open and closed.
// It is how a boundary moves between an interval and its complement.
// Unbounded endpoints have no inverse and are returned as is.
func (b Bound[T]) invert() Bound[T] {
	if b.unbounded {
		return b
	}
	b.closed = !b.closed
	return b
}

// admitsAsLower reports whether the value satisfies the bound interpreted as a lower endpoint.
func (b Bound[T]) admitsAsLower(v T) bool {
	if b.unbounded {
		return true
	}
	c := compare.Ordered(b.value, v)
	if compare.IsLess(c) {
		return true
	}
	return compare.IsEqual(c) && b.closed
}

// admitsAsUpper reports whether the value satisfies the bound interpreted as an upper endpoint.
func (b Bound[T]) admitsAsUpper(v T) bool {
	if b.unbounded {
		return true
	}
	c := compare.Ordered(v, b.value)
	if compare.IsLess(c) {
		return true
	}
	return compare.IsEqual(c) && b.closed
}

// connects reports whether an upper endpoint touches or overlaps a lower endpoint,
// meaning that no value of the domain can fall between the two.
func connects[T Value](upper, lower Bound[T]) bool {
	if upper.unbounded || lower.unbounded {
		return true
	}
	c := compare.Ordered(lower.value, upper.value)
	if !compare.IsEqual(c) {
		return compare.IsLess(c)
	}
	return upper.closed || lower.closed
}

// meets reports whether an upper endpoint is adjacent to a lower endpoint:
// they share the boundary value with exactly one of the two being closed,
// so together they cover the boundary without overlapping.
func meets[T Value](upper, lower Bound[T]) bool {
	if upper.unbounded || lower.unbounded {
		return false
	}
	return compare.IsEqual(compare.Ordered(upper.value, lower.value)) &&
		upper.closed != lower.closed
}

// Package compare contains helpers to work with three-way comparison results,
// and comparator functions for the built-in ordered types.
package compare

import (
	"strings"

	"go.llib.dev/intervalkit/internal/constraints"
)

// Interface is the convention for types that define their own ordering.
//
// Example usage:
//
//	type Revision int
//
//	func (r Revision) Compare(oth Revision) int {
//		return compare.Ordered(r, oth)
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// Ordered is a three-way comparison for any of the built-in ordered types.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

func Numbers[T constraints.Number](a, b T) int {
	return Ordered(a, b)
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

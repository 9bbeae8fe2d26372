package interval

import (
	"fmt"
	"strings"

	"go.llib.dev/intervalkit/pkg/slicekit"
)

// String returns the interval in the standard mathematical notation,
// like "[1,5]", "(1,5]" or "(-inf,3)". The empty interval reads as "{}".
func (iv Interval[T]) String() string {
	if iv.IsEmpty() {
		return "{}"
	}
	var sb strings.Builder
	if iv.lower.unbounded {
		sb.WriteString("(-inf")
	} else {
		if iv.lower.closed {
			sb.WriteByte('[')
		} else {
			sb.WriteByte('(')
		}
		sb.WriteString(fmt.Sprint(iv.lower.value))
	}
	sb.WriteByte(',')
	if iv.upper.unbounded {
		sb.WriteString("+inf)")
	} else {
		sb.WriteString(fmt.Sprint(iv.upper.value))
		if iv.upper.closed {
			sb.WriteByte(']')
		} else {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}

// String returns the set in the standard mathematical notation.
// The atomic intervals are joined by " | ", like "(-inf,3) | [5,+inf)",
// and the empty set reads as "{}".
func (s Set[T]) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	return strings.Join(slicekit.Must(slicekit.Map[string](s.atomics, Interval[T].String)), " | ")
}

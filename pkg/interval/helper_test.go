package interval_test

import (
	"fmt"
	"testing"

	"go.llib.dev/intervalkit/pkg/compare"
	"go.llib.dev/intervalkit/pkg/interval"
	"go.llib.dev/testcase/random"
)

// canonicalViolation inspects the atomic intervals of a set,
// and describes the first violation of the canonical form invariant it finds.
// It reports an empty string when the set is canonical.
func canonicalViolation[T interval.Value](s interval.Set[T]) string {
	atomics := s.Atomics()
	for i, iv := range atomics {
		if iv.IsEmpty() {
			return fmt.Sprintf("atomic interval #%d is empty", i)
		}
	}
	for i := 0; i+1 < len(atomics); i++ {
		a, b := atomics[i], atomics[i+1]
		if !compare.IsLess(a.Lower().CompareAsLower(b.Lower())) {
			return fmt.Sprintf("atomic intervals #%d and #%d are not in ascending order: %s, %s", i, i+1, a, b)
		}
		if a.Overlaps(b) {
			return fmt.Sprintf("atomic intervals #%d and #%d overlap: %s, %s", i, i+1, a, b)
		}
		if a.Adjacent(b) {
			return fmt.Sprintf("atomic intervals #%d and #%d are adjacent: %s, %s", i, i+1, a, b)
		}
	}
	return ""
}

func assertCanonical[T interval.Value](tb testing.TB, s interval.Set[T]) {
	tb.Helper()
	if violation := canonicalViolation(s); violation != "" {
		tb.Fatalf("set %s is not in canonical form: %s", s, violation)
	}
}

// randomInterval yields an interval of a deliberately small integer domain,
// so that overlapping and adjacent cases come up often.
func randomInterval(rnd *random.Random) interval.Interval[int] {
	lo := rnd.IntBetween(-20, 20)
	hi := rnd.IntBetween(-20, 20)
	switch rnd.IntBetween(0, 6) {
	case 0:
		return interval.Closed(lo, hi)
	case 1:
		return interval.Open(lo, hi)
	case 2:
		return interval.ClosedOpen(lo, hi)
	case 3:
		return interval.OpenClosed(lo, hi)
	case 4:
		return interval.AtLeast(lo)
	case 5:
		return interval.AtMost(hi)
	default:
		return interval.Point(lo)
	}
}

func randomSet(rnd *random.Random) interval.Set[int] {
	var atomics []interval.Interval[int]
	for i, n := 0, rnd.IntBetween(0, 6); i < n; i++ {
		atomics = append(atomics, randomInterval(rnd))
	}
	return interval.From(atomics...)
}

// sampleValues are the probe points the membership based assertions check,
// chosen to cover the whole domain randomInterval draws its boundaries from.
func sampleValues() []int {
	var vs []int
	for v := -25; v <= 25; v++ {
		vs = append(vs, v)
	}
	return vs
}

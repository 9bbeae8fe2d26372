package interval

import (
	"iter"
	"slices"
	"sort"

	"go.llib.dev/intervalkit/pkg/compare"
	"go.llib.dev/intervalkit/pkg/slicekit"
)

// Set is an immutable set of values over an ordered domain,
// represented as atomic intervals held in canonical form:
// sorted by lower bound, non-empty, non-overlapping and non-adjacent.
// The zero value of Set is the empty set, ready for use.
type Set[T Value] struct {
	atomics []Interval[T]
}

// From builds a set from any collection of intervals.
// Overlapping and adjacent intervals are merged and empty intervals are dropped,
// so equal sets always share the same representation.
func From[T Value](intervals ...Interval[T]) Set[T] {
	return Set[T]{atomics: normalize(intervals)}
}

// normalize establishes the canonical form:
// it drops the empty intervals, sorts by the bound order,
// then merges every overlapping or adjacent neighbour in a single sweep.
// The input slice is left untouched.
func normalize[T Value](intervals []Interval[T]) []Interval[T] {
	kept := make([]Interval[T], 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			kept = append(kept, iv)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	slices.SortFunc(kept, func(a, b Interval[T]) int {
		if c := a.lower.CompareAsLower(b.lower); !compare.IsEqual(c) {
			return c
		}
		return a.upper.CompareAsUpper(b.upper)
	})
	out := kept[:1]
	for _, cur := range kept[1:] {
		last := &out[len(out)-1]
		if !connects(last.upper, cur.lower) {
			out = append(out, cur)
			continue
		}
		if compare.IsLess(last.upper.CompareAsUpper(cur.upper)) {
			last.upper = cur.upper
		}
	}
	return out
}

// Len returns the number of atomic intervals the set consists of.
func (s Set[T]) Len() int {
	return len(s.atomics)
}

// IsEmpty reports whether no value belongs to the set.
func (s Set[T]) IsEmpty() bool {
	return len(s.atomics) == 0
}

// Atomics returns a copy of the atomic intervals of the set in canonical order.
func (s Set[T]) Atomics() []Interval[T] {
	return slicekit.Clone(s.atomics)
}

// Iter iterates over the atomic intervals of the set in canonical order.
func (s Set[T]) Iter() iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		for _, iv := range s.atomics {
			if !yield(iv) {
				return
			}
		}
	}
}

// Equal reports whether the two sets contain exactly the same values.
// Thanks to the canonical form this is a plain comparison of the atomic intervals.
func (s Set[T]) Equal(oth Set[T]) bool {
	return slices.Equal(s.atomics, oth.atomics)
}

// Contains reports whether the value is part of the set.
func (s Set[T]) Contains(v T) bool {
	// the first atomic interval that doesn't end below v is the only candidate
	i := sort.Search(len(s.atomics), func(i int) bool {
		return s.atomics[i].upper.admitsAsUpper(v)
	})
	if i == len(s.atomics) {
		return false
	}
	return s.atomics[i].Contains(v)
}

// Union returns the set of values that are part of either set.
func (s Set[T]) Union(oth Set[T]) Set[T] {
	return Set[T]{atomics: normalize(slicekit.Merge(s.atomics, oth.atomics))}
}

// Intersect returns the set of values that are part of both sets.
func (s Set[T]) Intersect(oth Set[T]) Set[T] {
	var out []Interval[T]
	var i, j int
	for i < len(s.atomics) && j < len(oth.atomics) {
		a, b := s.atomics[i], oth.atomics[j]
		if x := a.Intersect(b); !x.IsEmpty() {
			out = append(out, x)
		}
		// step over the interval that ends first, it cannot intersect anything further
		if compare.IsLess(a.upper.CompareAsUpper(b.upper)) {
			i++
		} else {
			j++
		}
	}
	return Set[T]{atomics: out}
}

// Difference returns the set of values that are part of the set but not the other set.
func (s Set[T]) Difference(oth Set[T]) Set[T] {
	var out []Interval[T]
	var j int
	for _, atom := range s.atomics {
		cur := atom
		for k := j; k < len(oth.atomics) && !cur.IsEmpty(); k++ {
			cut := oth.atomics[k]
			if !cur.Overlaps(cut) {
				if compare.IsLess(cut.lower.CompareAsLower(cur.lower)) {
					// the cut ended before this atom, it cannot affect the later ones either
					j = k + 1
					continue
				}
				break
			}
			if !cut.lower.unbounded {
				if left := New(cur.lower, cut.lower.invert()); !left.IsEmpty() {
					out = append(out, left)
				}
			}
			if cut.upper.unbounded {
				cur = Interval[T]{}
			} else {
				cur = New(cut.upper.invert(), cur.upper)
			}
		}
		if !cur.IsEmpty() {
			out = append(out, cur)
		}
	}
	return Set[T]{atomics: out}
}

// Complement returns the set of values that are not part of the set.
func (s Set[T]) Complement() Set[T] {
	if s.IsEmpty() {
		return From(All[T]())
	}
	var out []Interval[T]
	if first := s.atomics[0]; !first.lower.unbounded {
		out = append(out, New(Unbounded[T](), first.lower.invert()))
	}
	for i := 0; i+1 < len(s.atomics); i++ {
		gap := New(s.atomics[i].upper.invert(), s.atomics[i+1].lower.invert())
		out = append(out, gap)
	}
	if last, ok := slicekit.Last(s.atomics); ok && !last.upper.unbounded {
		out = append(out, New(last.upper.invert(), Unbounded[T]()))
	}
	return Set[T]{atomics: out}
}

// Overlaps reports whether the two sets share at least one common value.
func (s Set[T]) Overlaps(oth Set[T]) bool {
	var i, j int
	for i < len(s.atomics) && j < len(oth.atomics) {
		a, b := s.atomics[i], oth.atomics[j]
		if a.Overlaps(b) {
			return true
		}
		if compare.IsLess(a.upper.CompareAsUpper(b.upper)) {
			i++
		} else {
			j++
		}
	}
	return false
}

// Enclosure returns the smallest single interval that covers the whole set.
// The ok return is false when the set is empty.
func (s Set[T]) Enclosure() (Interval[T], bool) {
	last, ok := slicekit.Last(s.atomics)
	if !ok {
		return Interval[T]{}, false
	}
	return New(s.atomics[0].lower, last.upper), true
}

// Compact applies the discrete successor rule on top of the canonical form:
// neighbouring atomic intervals with closed endpoints are merged together
// when the successor of one's upper boundary value is the other's lower boundary value,
// like [1,2] and [3,5] over integers with a successor of v+1.
// The continuous boundary rule of the canonical form never merges such neighbours,
// as it cannot know that the domain holds no value between 2 and 3.
func (s Set[T]) Compact(succ func(T) T) Set[T] {
	if s.Len() < 2 {
		return s
	}
	out := make([]Interval[T], 0, len(s.atomics))
	out = append(out, s.atomics[0])
	for _, cur := range s.atomics[1:] {
		last := &out[len(out)-1]
		if last.upper.IsClosed() && cur.lower.IsClosed() &&
			compare.IsEqual(compare.Ordered(succ(last.upper.value), cur.lower.value)) {
			last.upper = cur.upper
			continue
		}
		out = append(out, cur)
	}
	return Set[T]{atomics: out}
}

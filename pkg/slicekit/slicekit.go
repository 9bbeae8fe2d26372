// Package slicekit contains generic slice helper functions.
package slicekit

import "fmt"

// Must is a panic-on-error helper for the error returning functions of this package.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("slicekit.Must: %w", err))
	}
	return v
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any, FN mapFunc[O, I]](s []I, fn FN) ([]O, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out    = make([]O, len(s))
		mapper = toMapFunc[O, I](fn)
	)
	for index, v := range s {
		o, err := mapper(v)
		if err != nil {
			return out, err
		}
		out[index] = o
	}
	return out, nil
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

// Merge will merge every given slice into a single slice.
func Merge[T any](slices ...[]T) []T {
	var out []T
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Clone creates a copy of the passed source slice.
func Clone[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Last returns the last element of the slice,
// and a bool flag about whether the slice had any element.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Package constraints defines the generic type constraints used across the module.
package constraints

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Int | UInt | Float
}

// Ordered is the constraint for types that support the <, <=, >= and > operators.
type Ordered interface {
	Int | UInt | Float | ~string
}

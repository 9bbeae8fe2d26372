package interval

import (
	"fmt"
	"strings"

	"go.llib.dev/intervalkit/pkg/errorkit"
	"go.llib.dev/intervalkit/pkg/slicekit"
)

// ErrParse is returned when a textual interval representation is malformed.
const ErrParse errorkit.Error = "ErrParse"

// Parse interprets the notation String produces, like "[1,5]", "{}"
// or "(-inf,3) | [5,+inf)", and returns the represented set.
// Boundary values are interpreted by the given parseValue function.
// The notation is unambiguous only for boundary values
// that are free of the "," and "|" separator characters.
func Parse[T Value](raw string, parseValue func(string) (T, error)) (Set[T], error) {
	raw = strings.TrimSpace(raw)
	if isEmptyNotation(raw) {
		return Set[T]{}, nil
	}
	if raw == "" {
		return Set[T]{}, ErrParse.F("empty input")
	}
	atomics, err := slicekit.Map[Interval[T]](strings.Split(raw, "|"), func(part string) (Interval[T], error) {
		return ParseInterval(part, parseValue)
	})
	if err != nil {
		return Set[T]{}, err
	}
	return From(atomics...), nil
}

// ParseInterval interprets a single atomic interval like "[1,5]", "(2,+inf)" or "{}".
func ParseInterval[T Value](raw string, parseValue func(string) (T, error)) (Interval[T], error) {
	raw = strings.TrimSpace(raw)
	if isEmptyNotation(raw) {
		return Interval[T]{}, nil
	}
	if len(raw) < len("[,]") {
		return Interval[T]{}, ErrParse.F("%q is too short to be an interval", raw)
	}
	var (
		head = raw[0]
		tail = raw[len(raw)-1]
		body = raw[1 : len(raw)-1]
	)
	if head != '[' && head != '(' {
		return Interval[T]{}, ErrParse.F("%q must begin with %q or %q", raw, "[", "(")
	}
	if tail != ']' && tail != ')' {
		return Interval[T]{}, ErrParse.F("%q must end with %q or %q", raw, "]", ")")
	}
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Interval[T]{}, ErrParse.F("%q must have two boundary values separated by %q", raw, ",")
	}
	lower, lowerErr := parseBound(parts[0], head == '[', parseValue)
	upper, upperErr := parseBound(parts[1], tail == ']', parseValue)
	if err := errorkit.Merge(lowerErr, upperErr); err != nil {
		return Interval[T]{}, ErrParse.Wrap(err)
	}
	return New(lower, upper), nil
}

func parseBound[T Value](raw string, closed bool, parseValue func(string) (T, error)) (Bound[T], error) {
	raw = strings.TrimSpace(raw)
	if isInfNotation(raw) {
		return Unbounded[T](), nil
	}
	v, err := parseValue(raw)
	if err != nil {
		return Bound[T]{}, fmt.Errorf("%q: %w", raw, err)
	}
	if closed {
		return ClosedBound(v), nil
	}
	return OpenBound(v), nil
}

func isEmptyNotation(raw string) bool {
	return raw == "{}" || raw == "∅"
}

func isInfNotation(raw string) bool {
	switch raw {
	case "-inf", "+inf", "inf", "-∞", "+∞", "∞":
		return true
	default:
		return false
	}
}

package interval

import "encoding/json"

// MarshalText implements encoding.TextMarshaler using the String notation.
func (iv Interval[T]) MarshalText() ([]byte, error) {
	return []byte(iv.String()), nil
}

// MarshalJSON encodes the interval as a JSON string in the String notation.
func (iv Interval[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.String())
}

// MarshalText implements encoding.TextMarshaler using the String notation.
func (s Set[T]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalJSON encodes the set as a JSON string in the String notation.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalText decodes the notation MarshalText produces.
// It is a function rather than a method,
// as decoding the boundary values requires the domain specific parseValue function.
func UnmarshalText[T Value](data []byte, parseValue func(string) (T, error)) (Set[T], error) {
	return Parse(string(data), parseValue)
}

// UnmarshalJSON decodes a JSON string that MarshalJSON produced.
func UnmarshalJSON[T Value](data []byte, parseValue func(string) (T, error)) (Set[T], error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Set[T]{}, ErrParse.Wrap(err)
	}
	return Parse(raw, parseValue)
}

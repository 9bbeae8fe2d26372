// Package must turns error returning function calls into panicking ones.
//
// It is meant for the global variable scope and for example code,
// where a returned error would signal a programming error:
//
//	var weekly = must.Must(interval.Parse("[1,7]", strconv.Atoi))
package must

// Must is a syntax sugar to express things like must.Must(regexp.Compile(`regexp`))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Package must panics when a program invariant does not hold.
// Use it only for conditions that indicate a bug in this program,
// never for errors a caller could reasonably handle.
package must

import "fmt"

// NotErrorf panics with the printf-style message
// if the given error is not nil.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v\n%v", err, fmt.Sprintf(format, args...)))
	}
}

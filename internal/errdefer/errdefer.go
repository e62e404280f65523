// Package errdefer helps run cleanup operations in a defer statement
// when those operations may themselves fail
// and their failure should be reported by the surrounding function.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closer,
// joining its error, if any, into *err.
//
// Use it in a defer statement with a named return:
//
//	defer errdefer.Close(&err, f)
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}

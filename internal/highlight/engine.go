// Package highlight renders sample source code into HTML
// with the two highlighting tools under comparison.
//
// Both tools are exposed behind the same [Engine] interface
// so that the rest of the program does not care which one it holds.
package highlight

import (
	"errors"
	"html/template"

	"go.abhg.dev/hlduel/internal/lang"
)

// ErrUnsupported is reported by an [Engine]
// that has no grammar for the requested language.
// Callers are expected to fall back to [Escape].
var ErrUnsupported = errors.New("language not supported")

// Engine is a single highlighting tool.
type Engine interface {
	// Name identifies the tool.
	// It's stable, URL-safe, and used in DOM ids.
	Name() string

	// Label is the human-readable name of the tool.
	Label() string

	// Highlight renders the given source code into an HTML fragment.
	// The fragment does not include a surrounding <pre> tag.
	Highlight(lg lang.Language, src string) (string, error)
}

// Escape renders source code as HTML-escaped plain text.
// It is the universal fallback when an engine fails:
// the comparison view always has something to show.
func Escape(src string) string {
	return template.HTMLEscapeString(src)
}

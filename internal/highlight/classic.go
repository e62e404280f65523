package highlight

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/sourcegraph/syntaxhighlight"
	"go.abhg.dev/hlduel/internal/lang"
)

// Classic is the [Engine] backed by sourcegraph/syntaxhighlight,
// a scanner-based highlighter in the google-code-prettify lineage.
// Unlike Chroma it carries no per-language grammars;
// a single heuristic scanner covers all source-shaped input.
type Classic struct{}

var _ Engine = (*Classic)(nil)

// Name reports "classic".
func (*Classic) Name() string { return "classic" }

// Label reports the display name of the tool.
func (*Classic) Label() string { return "syntaxhighlight" }

// Highlight renders the given source code into an HTML fragment.
//
// Diff input is refused with [ErrUnsupported]:
// the scanner would read the line prefixes as punctuation noise,
// which makes for a misleading comparison.
func (*Classic) Highlight(lg lang.Language, src string) (string, error) {
	if lg.IsDiff() {
		return "", errtrace.Wrap(fmt.Errorf("%w: %q", ErrUnsupported, lg.ID))
	}

	out, err := syntaxhighlight.AsHTML([]byte(src))
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("scan %v: %w", lg.ID, err))
	}
	return string(out), nil
}

package highlight

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.abhg.dev/hlduel/internal/lang"
)

// Chroma is the [Engine] backed by the Chroma library.
type Chroma struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// UseClasses specifies whether the output carries class attributes
	// instead of inline 'style' attributes.
	// Class-based output assumes the stylesheet written by WriteCSS.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

var _ Engine = (*Chroma)(nil)

func (h *Chroma) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// Name reports "chroma".
func (h *Chroma) Name() string { return "chroma" }

// Label reports the display name of the tool.
func (h *Chroma) Label() string { return "Chroma" }

func (h *Chroma) style() *chroma.Style {
	if h.Style != nil {
		return h.Style
	}
	return ComparisonStyle
}

// WriteCSS writes the style classes for highlighted fragments to writer.
// If this engine is not using classes, WriteCSS is a no-op.
func (h *Chroma) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.style()))
}

// Highlight renders the given source code into an HTML fragment.
// It fails with [ErrUnsupported] if Chroma has no lexer
// registered under the language's ChromaName.
func (h *Chroma) Highlight(lg lang.Language, src string) (string, error) {
	h.init()

	lexer := lexers.Get(lg.ChromaName)
	if lexer == nil {
		return "", errtrace.Wrap(fmt.Errorf("%w: no lexer named %q", ErrUnsupported, lg.ChromaName))
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("tokenise %v: %w", lg.ID, err))
	}

	var buff bytes.Buffer
	if err := h.formatter.Format(&buff, h.style(), it); err != nil {
		return "", errtrace.Wrap(fmt.Errorf("format %v: %w", lg.ID, err))
	}
	return buff.String(), nil
}

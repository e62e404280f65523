// Package webui serves the side-by-side comparison interface.
package webui

import (
	"embed"
	"errors"
	"html/template"
	"strings"

	"go.abhg.dev/hlduel/internal/codeline"
	"go.abhg.dev/hlduel/internal/diffmark"
	"go.abhg.dev/hlduel/internal/highlight"
	"go.abhg.dev/hlduel/internal/lang"
)

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static
	_staticFS embed.FS

	_indexTmpl = template.Must(
		template.New("index.html").
			ParseFS(_tmplFS, "tmpl/index.html", "tmpl/layout.html"),
	)

	_compareTmpl = template.Must(
		template.New("compare.html").
			ParseFS(_tmplFS, "tmpl/compare.html", "tmpl/layout.html"),
	)
)

// Line is a single rendered source line in a pane.
type Line struct {
	// Number is the 1-based source line number.
	Number int

	// Class carries the line's diff classes, if any.
	Class string

	// HTML is the highlighted content of the line.
	HTML template.HTML
}

// Pane is one tool's rendering of the sample.
type Pane struct {
	// Name is the tool's URL/DOM-safe identifier.
	Name string

	// Label is the tool's display name.
	Label string

	// Fallback reports that the tool could not highlight this sample
	// and the pane is showing escaped plain text instead.
	Fallback bool

	Lines []Line
}

type comparePage struct {
	Language  lang.Language
	Languages []lang.Language
	Panes     []Pane
	SyncMS    int64
}

type indexPage struct {
	Languages []lang.Language
}

// renderPane renders one tool's view of the sample.
// It never fails:
// a tool that can't highlight the sample
// degrades to HTML-escaped plain text,
// and a diff line that can't be annotated stays unannotated.
func (s *Server) renderPane(eng highlight.Engine, lg lang.Language, src string) Pane {
	fragment, err := eng.Highlight(lg, src)
	fallback := false
	if err != nil {
		if !errors.Is(err, highlight.ErrUnsupported) {
			s.logger().Printf("webui: highlight %v/%v: %v", eng.Name(), lg.ID, err)
		}
		fragment = highlight.Escape(src)
		fallback = true
	}

	fragments, err := codeline.Split(fragment)
	if err != nil {
		s.logger().Printf("webui: split %v/%v: %v", eng.Name(), lg.ID, err)
		fragments = escapeLines(src)
	}

	var ann *diffmark.Annotator
	if lg.IsDiff() {
		ann = diffmark.New(src)
	}

	lines := make([]Line, len(fragments))
	for i, f := range fragments {
		line := Line{Number: i + 1, HTML: template.HTML(f)}
		if ann != nil {
			annotated, kind, err := ann.AnnotateHTML(i+1, f)
			if err == nil {
				line.HTML = template.HTML(annotated)
				line.Class = kind.BlockClass()
			}
		}
		lines[i] = line
	}

	return Pane{
		Name:     eng.Name(),
		Label:    eng.Label(),
		Fallback: fallback,
		Lines:    lines,
	}
}

// escapeLines is the last-ditch pane body:
// the raw sample, escaped line by line.
func escapeLines(src string) []string {
	raw := strings.Split(src, "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = highlight.Escape(l)
	}
	return out
}

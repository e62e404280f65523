package webui

import (
	"bytes"
	"html/template"
	"io"
	"io/fs"
	"log"
	"net/http"
	"time"

	"go.abhg.dev/hlduel/internal/highlight"
	"go.abhg.dev/hlduel/internal/lang"
	"go.abhg.dev/hlduel/internal/must"
	"go.abhg.dev/hlduel/internal/scrollsync"
)

// CSSWriter writes the stylesheet needed by class-based fragments.
type CSSWriter interface {
	WriteCSS(io.Writer) error
}

var _ CSSWriter = (*highlight.Chroma)(nil)

// Server renders and serves the comparison pages.
type Server struct {
	// Log receives request-level diagnostics.
	// Defaults to a silent logger.
	Log *log.Logger

	// Engines are the highlighting tools under comparison,
	// in display order.
	Engines []highlight.Engine

	// CSS provides the stylesheet for highlighted fragments.
	CSS CSSWriter

	// Hub mirrors scroll positions between panes.
	Hub *scrollsync.Hub

	// SyncWindow is the scroll debounce window
	// surfaced to the client script.
	// Defaults to [scrollsync.DefaultWindow].
	SyncWindow time.Duration
}

func (s *Server) logger() *log.Logger {
	if s.Log != nil {
		return s.Log
	}
	return log.New(io.Discard, "", 0)
}

func (s *Server) syncWindow() time.Duration {
	if s.SyncWindow > 0 {
		return s.SyncWindow
	}
	return scrollsync.DefaultWindow
}

// Handler builds the HTTP handler for the whole interface.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(_staticFS, "static")
	must.NotErrorf(err, "embedded static tree")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /compare/{lang}", s.handleCompare)
	mux.HandleFunc("GET /ws/{lang}", s.handleScrollSync)
	mux.HandleFunc("GET /static/css/chroma.css", s.handleChromaCSS)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "OK")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderHTML(w, _indexTmpl, indexPage{Languages: lang.All()})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	lg, ok := lang.Lookup(r.PathValue("lang"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	src := lg.Sample()
	panes := make([]Pane, len(s.Engines))
	for i, eng := range s.Engines {
		panes[i] = s.renderPane(eng, lg, src)
	}

	s.renderHTML(w, _compareTmpl, comparePage{
		Language:  lg,
		Languages: lang.All(),
		Panes:     panes,
		SyncMS:    s.syncWindow().Milliseconds(),
	})
}

func (s *Server) handleScrollSync(w http.ResponseWriter, r *http.Request) {
	lg, ok := lang.Lookup(r.PathValue("lang"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if s.Hub == nil {
		http.Error(w, "scroll sync disabled", http.StatusNotImplemented)
		return
	}
	s.Hub.Serve(lg.ID, w, r)
}

func (s *Server) handleChromaCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")

	if s.CSS == nil {
		return
	}
	if err := s.CSS.WriteCSS(w); err != nil {
		s.logger().Printf("webui: write css: %v", err)
	}
}

// renderHTML executes the page template into a buffer first
// so that a template error becomes a clean 500
// instead of a half-written page.
func (s *Server) renderHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buff bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buff, "Page", data); err != nil {
		s.logger().Printf("webui: render: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buff.Bytes())
}

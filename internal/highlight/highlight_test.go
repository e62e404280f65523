package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/hlduel/internal/lang"
)

func mustLang(t *testing.T, id string) lang.Language {
	t.Helper()

	lg, ok := lang.Lookup(id)
	require.True(t, ok, "language %q must be registered", id)
	return lg
}

func TestChroma_highlight(t *testing.T) {
	t.Parallel()

	lg := mustLang(t, "go")
	h := Chroma{UseClasses: true}

	got, err := h.Highlight(lg, "package main\n\nfunc main() {}\n")
	require.NoError(t, err)

	assert.Contains(t, got, "<span")
	assert.NotContains(t, got, "<pre",
		"fragment must not carry its own pre wrapper")
}

func TestChroma_unknownLexer(t *testing.T) {
	t.Parallel()

	var h Chroma
	_, err := h.Highlight(lang.Language{
		ID:         "cobol",
		ChromaName: "cobol-2014",
	}, "IDENTIFICATION DIVISION.")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestChroma_writeCSS(t *testing.T) {
	t.Parallel()

	t.Run("classes", func(t *testing.T) {
		t.Parallel()

		h := Chroma{UseClasses: true}

		var buff bytes.Buffer
		require.NoError(t, h.WriteCSS(&buff))
		assert.Contains(t, buff.String(), ".chroma")
	})

	t.Run("inline styles", func(t *testing.T) {
		t.Parallel()

		var h Chroma

		var buff bytes.Buffer
		require.NoError(t, h.WriteCSS(&buff))
		assert.Empty(t, buff.String())
	})
}

func TestClassic_highlight(t *testing.T) {
	t.Parallel()

	lg := mustLang(t, "javascript")
	var h Classic

	got, err := h.Highlight(lg, `const x = "hello";`)
	require.NoError(t, err)
	assert.Contains(t, got, "<span")
}

func TestClassic_refusesDiff(t *testing.T) {
	t.Parallel()

	lg := mustLang(t, "diff")
	var h Classic

	_, err := h.Highlight(lg, "-old\n+new\n")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "empty"},
		{desc: "plain", give: "hello", want: "hello"},
		{desc: "tag", give: "<div>", want: "&lt;div&gt;"},
		{desc: "ampersand", give: "a && b", want: "a &amp;&amp; b"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Escape(tt.give))
		})
	}
}

func TestMemoize(t *testing.T) {
	t.Parallel()

	lg := mustLang(t, "go")

	t.Run("caches successes", func(t *testing.T) {
		t.Parallel()

		eng := countingEngine{out: "<span>ok</span>"}
		m := Memoize(&eng)

		for range 3 {
			got, err := m.Highlight(lg, "package main")
			require.NoError(t, err)
			assert.Equal(t, "<span>ok</span>", got)
		}
		assert.Equal(t, 1, eng.calls)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		eng := countingEngine{fail: true}
		m := Memoize(&eng)

		for range 3 {
			_, err := m.Highlight(lg, "package main")
			assert.ErrorIs(t, err, ErrUnsupported)
		}
		assert.Equal(t, 3, eng.calls)
	})

	t.Run("delegates names", func(t *testing.T) {
		t.Parallel()

		m := Memoize(&Classic{})
		assert.Equal(t, "classic", m.Name())
		assert.Equal(t, "syntaxhighlight", m.Label())
	})
}

type countingEngine struct {
	out   string
	fail  bool
	calls int
}

var _ Engine = (*countingEngine)(nil)

func (e *countingEngine) Name() string  { return "counting" }
func (e *countingEngine) Label() string { return "Counting" }

func (e *countingEngine) Highlight(lang.Language, string) (string, error) {
	e.calls++
	if e.fail {
		return "", ErrUnsupported
	}
	return e.out, nil
}

func TestChroma_allRegisteredLanguages(t *testing.T) {
	t.Parallel()

	// Every registry entry must map to a real Chroma lexer;
	// the escape fallback exists for failures,
	// not for typos in the table.
	h := Chroma{UseClasses: true}
	for _, lg := range lang.All() {
		t.Run(lg.ID, func(t *testing.T) {
			t.Parallel()

			got, err := h.Highlight(lg, lg.Sample())
			require.NoError(t, err)
			assert.False(t, strings.TrimSpace(got) == "", "fragment must not be empty")
		})
	}
}

// Package lang defines the closed set of languages
// available for side-by-side comparison,
// along with the sample code rendered for each of them.
package lang

import (
	"embed"
	"sort"
	"strings"

	"go.abhg.dev/hlduel/internal/must"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Fixtures live under testdata so the build
// never claims go.go or c.c as source files.
//
//go:embed samples/testdata
var _samples embed.FS

// Language is a single entry in the language registry.
type Language struct {
	// ID identifies the language in URLs and lookups.
	// Always lowercase.
	ID string

	// Label is the human-readable name of the language.
	Label string

	// ChromaName is the name under which Chroma
	// registers a lexer for this language.
	ChromaName string

	sample string // file name under samples/testdata/
}

// IsDiff reports whether this language's sample
// is a unified diff rather than plain source code.
func (l Language) IsDiff() bool {
	return l.ID == "diff"
}

// Sample returns the sample source code for this language.
//
// Samples are compiled into the binary;
// a missing sample is a programming error.
func (l Language) Sample() string {
	bs, err := _samples.ReadFile("samples/testdata/" + l.sample)
	must.NotErrorf(err, "load sample for %q", l.ID)
	return strings.TrimSuffix(string(bs), "\n")
}

var _all = []Language{
	{ID: "bash", Label: "Bash", ChromaName: "bash", sample: "bash.sh"},
	{ID: "c", Label: "C", ChromaName: "c", sample: "c.c"},
	{ID: "cpp", Label: "C++", ChromaName: "c++", sample: "cpp.cpp"},
	{ID: "csharp", Label: "C#", ChromaName: "csharp", sample: "csharp.cs"},
	{ID: "css", Label: "CSS", ChromaName: "css", sample: "css.css"},
	{ID: "diff", Label: "Diff", ChromaName: "diff", sample: "diff.diff"},
	{ID: "go", Label: "Go", ChromaName: "go", sample: "go.go"},
	{ID: "html", Label: "HTML", ChromaName: "html", sample: "html.html"},
	{ID: "java", Label: "Java", ChromaName: "java", sample: "java.java"},
	{ID: "javascript", Label: "JavaScript", ChromaName: "javascript", sample: "javascript.js"},
	{ID: "json", Label: "JSON", ChromaName: "json", sample: "json.json"},
	{ID: "kotlin", Label: "Kotlin", ChromaName: "kotlin", sample: "kotlin.kt"},
	{ID: "php", Label: "PHP", ChromaName: "php", sample: "php.php"},
	{ID: "python", Label: "Python", ChromaName: "python", sample: "python.py"},
	{ID: "ruby", Label: "Ruby", ChromaName: "ruby", sample: "ruby.rb"},
	{ID: "rust", Label: "Rust", ChromaName: "rust", sample: "rust.rs"},
	{ID: "sql", Label: "SQL", ChromaName: "sql", sample: "sql.sql"},
	{ID: "swift", Label: "Swift", ChromaName: "swift", sample: "swift.swift"},
	{ID: "typescript", Label: "TypeScript", ChromaName: "typescript", sample: "typescript.ts"},
	{ID: "yaml", Label: "YAML", ChromaName: "yaml", sample: "yaml.yaml"},
}

var _byID = make(map[string]Language, len(_all))

func init() {
	for _, l := range _all {
		_byID[l.ID] = l
	}
}

// Lookup finds a language by its identifier.
// It reports false for identifiers outside the registry;
// there is no default language.
func Lookup(id string) (Language, bool) {
	l, ok := _byID[id]
	return l, ok
}

// All returns every supported language sorted by label.
func All() []Language {
	langs := make([]Language, len(_all))
	copy(langs, _all)

	coll := collate.New(language.English)
	sort.Slice(langs, func(i, j int) bool {
		return coll.CompareString(langs[i].Label, langs[j].Label) < 0
	})
	return langs
}

// Package diffmark annotates highlighted unified-diff lines
// with add/remove styling.
//
// Inputs are pre-formatted unified diffs;
// classification is by line prefix only,
// no diffing happens here.
package diffmark

import (
	"bytes"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PrefixClass is the class of the span
// that isolates a line's diff prefix character.
// The stylesheet makes it non-selectable.
const PrefixClass = "hl-diff-prefix"

// Kind classifies a single diff line.
type Kind int

const (
	// None marks lines that carry no diff annotation:
	// hunk headers, file headers, and anything unrecognized.
	None Kind = iota

	// Added marks lines introduced by the diff.
	Added

	// Removed marks lines deleted by the diff.
	Removed

	// Context marks unchanged lines shown for context.
	Context
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Context:
		return "context"
	default:
		return "none"
	}
}

// BlockClass returns the class names for a rendered line of this kind,
// or an empty string for [None].
func (k Kind) BlockClass() string {
	switch k {
	case Added:
		return "hl-diff hl-diff-added"
	case Removed:
		return "hl-diff hl-diff-removed"
	case Context:
		return "hl-diff"
	default:
		return ""
	}
}

// Classify inspects the leading character of a raw diff line.
//
//	- or <  removed
//	+ or >  added
//	space   unchanged context
//
// Anything else, including an empty line, classifies as [None].
func Classify(line string) Kind {
	if len(line) < 1 {
		return None
	}
	switch line[0] {
	case '+', '>':
		return Added
	case '-', '<':
		return Removed
	case ' ':
		return Context
	default:
		return None
	}
}

// Annotator annotates rendered lines of one unified diff.
// Build it from the raw diff text,
// then apply it to each rendered line by 1-based line number.
type Annotator struct {
	lines []string
}

// New builds an Annotator for the given raw diff text.
func New(diff string) *Annotator {
	return &Annotator{lines: strings.Split(diff, "\n")}
}

// Kind classifies the raw diff line with the given 1-based number.
// Numbers outside the diff classify as [None].
func (a *Annotator) Kind(lineNo int) Kind {
	if lineNo < 1 || lineNo > len(a.lines) {
		return None
	}
	return Classify(a.lines[lineNo-1])
}

// Apply annotates the rendered form of the given raw diff line.
// container holds the parsed HTML of exactly that line;
// its children are the line's top-level nodes.
//
// Apply locates the line's first leaf text node --
// descending one level if the first child is itself a wrapper element --
// and moves the single leading prefix character
// into its own span with [PrefixClass].
// The visible characters of the line are otherwise untouched.
//
// If the expected prefix is not found where it should be,
// Apply leaves the line alone and reports [None]:
// a line the highlighter tokenized in an unexpected shape
// is rendered unannotated rather than corrupted.
func (a *Annotator) Apply(lineNo int, container *html.Node) Kind {
	kind := a.Kind(lineNo)
	if kind == None {
		return None
	}

	leaf := firstLeafText(container)
	if leaf == nil {
		return None
	}

	prefix := a.lines[lineNo-1][:1]
	if !strings.HasPrefix(leaf.Data, prefix) {
		return None
	}

	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr: []html.Attribute{
			{Key: "class", Val: PrefixClass},
		},
	}
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: prefix,
	})

	leaf.Parent.InsertBefore(span, leaf)
	leaf.Data = leaf.Data[1:]
	return kind
}

// firstLeafText finds the text node holding
// the first visible character of the line.
// It descends at most one level into a leading wrapper element.
func firstLeafText(container *html.Node) *html.Node {
	n := container.FirstChild
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		n = n.FirstChild
	}
	if n == nil || n.Type != html.TextNode {
		return nil
	}
	return n
}

// AnnotateHTML is [Annotator.Apply] over serialized HTML:
// it parses the line fragment, applies the annotation,
// and returns the re-serialized fragment with its classification.
func (a *Annotator) AnnotateHTML(lineNo int, fragment string) (string, Kind, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), container)
	if err != nil {
		return "", None, errtrace.Wrap(err)
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	kind := a.Apply(lineNo, container)

	var buff bytes.Buffer
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buff, c); err != nil {
			return "", None, errtrace.Wrap(err)
		}
	}
	return buff.String(), kind, nil
}

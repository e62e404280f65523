// Package codeline splits highlighted HTML fragments
// into per-line fragments.
//
// Highlighting tools return one fragment for the whole sample.
// The comparison view renders code line by line
// so that lines can be numbered, diff-annotated, and scroll-aligned;
// this package is the bridge between the two shapes.
package codeline

import (
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Split divides an HTML fragment into one fragment per source line.
//
// A newline inside a text node ends the current line.
// Elements open at that point are closed at the end of the line
// and reopened, with their attributes, at the start of the next,
// so every returned fragment is well-formed on its own.
//
// The concatenated text content of the returned fragments,
// joined with newlines, equals the text content of the input,
// except that a single trailing newline is absorbed:
// it ends the last line rather than opening an empty one.
func Split(fragment string) ([]string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var s splitter
	for _, n := range nodes {
		s.walk(n)
	}
	return s.finish(), nil
}

// openElem is an element that encloses the current position.
// Its start tag is written lazily on the first text of each line,
// so lines that end inside an element don't leave
// empty reopened husks on the next.
type openElem struct {
	node   *html.Node
	opened bool // start tag written to the current line
}

type splitter struct {
	lines []string
	cur   strings.Builder
	stack []*openElem
}

func (s *splitter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		s.text(n.Data)

	case html.ElementNode:
		el := openElem{node: n}
		s.stack = append(s.stack, &el)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(c)
		}
		s.stack = s.stack[:len(s.stack)-1]
		if el.opened {
			s.cur.WriteString("</" + n.Data + ">")
		}

	default:
		// Comments and the like are not part of highlighted output.
	}
}

func (s *splitter) text(data string) {
	for i, part := range strings.Split(data, "\n") {
		if i > 0 {
			s.endLine()
		}
		if part == "" {
			continue
		}
		s.flushOpen()
		s.cur.WriteString(html.EscapeString(part))
	}
}

func (s *splitter) flushOpen() {
	for _, el := range s.stack {
		if el.opened {
			continue
		}
		el.opened = true
		writeStartTag(&s.cur, el.node)
	}
}

func (s *splitter) endLine() {
	for i := len(s.stack) - 1; i >= 0; i-- {
		el := s.stack[i]
		if el.opened {
			s.cur.WriteString("</" + el.node.Data + ">")
			el.opened = false
		}
	}
	s.lines = append(s.lines, s.cur.String())
	s.cur.Reset()
}

func (s *splitter) finish() []string {
	if s.cur.Len() > 0 || len(s.lines) == 0 {
		s.lines = append(s.lines, s.cur.String())
	}
	return s.lines
}

func writeStartTag(sb *strings.Builder, n *html.Node) {
	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, attr := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Val))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ComparisonStyle is the default style for the comparison view.
// It's a light, low-contrast palette
// so that differences in tokenization stand out
// more than differences in color taste.
var ComparisonStyle = chroma.MustNewStyle("hlduel", map[chroma.TokenType]string{
	chroma.Keyword:         "#cf222e",
	chroma.Name:            "#1f2328",
	chroma.NameFunction:    "#8250df",
	chroma.NameBuiltin:     "#6639ba",
	chroma.LiteralString:   "#0a3069",
	chroma.LiteralNumber:   "#0550ae",
	chroma.Comment:         "italic #6e7781",
	chroma.CommentPreproc:  "#cf222e",
	chroma.Operator:        "#0550ae",
	chroma.GenericInserted: "#1a7f37",
	chroma.GenericDeleted:  "#cf222e",
	chroma.PreWrapper:      "bg:#ffffff",
	chroma.Background:      "bg:#ffffff",
})

func init() {
	styles.Register(ComparisonStyle)
}

// Package markdown converts preprocessed Markdown to HTML for previewing
// generated card grids without the host documentation generator.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// New returns the goldmark converter used for previews. Raw HTML is passed
// through, since the card fragments are HTML blocks.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)
}

// markdownBlock matches an opening tag carrying the markdown attribute, the
// md_in_html convention the grid cards use.
var markdownBlock = regexp.MustCompile(`(?m)^(<div\b[^>\n]*\smarkdown(?:="[^"]*")?\s*>)[ \t]*\n`)

// openMarkdownBlocks ends the HTML block right after each markdown-attributed
// opening tag so CommonMark parses the body as Markdown.
func openMarkdownBlocks(src []byte) []byte {
	return markdownBlock.ReplaceAll(src, []byte("$1\n\n"))
}

// ToHTML converts a Markdown document to an HTML fragment.
func ToHTML(src []byte) ([]byte, error) {
	src = openMarkdownBlocks(src)

	var buf bytes.Buffer
	buf.Grow(len(src) * 2)
	if err := New().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// previewCSS lays out both card containers well enough to eyeball a preview.
const previewCSS = `body{font-family:system-ui,sans-serif;max-width:60rem;margin:2rem auto;padding:0 1rem}
.grid.cards>ul,.problem-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr));gap:1rem;padding:0}
.grid.cards>ul>li,.problem-card{list-style:none;border:1px solid #ddd;border-radius:.5rem;padding:1rem}
.problem-card .header{display:flex;justify-content:space-between;font-weight:600}
.problem-card .source{color:#666;font-weight:400}`

// Page wraps an HTML fragment in a standalone document.
func Page(title string, body []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(body) + 512)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("<style>\n" + previewCSS + "\n</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.Bytes()
}

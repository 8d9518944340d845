package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Extended renders GitHub Flavored Markdown with highlighted code blocks.
// The underlying engine is immutable after construction.
type Extended struct {
	engine goldmark.Markdown
}

// NewExtended builds an extended renderer using the given chroma style.
func NewExtended(style string) *Extended {
	if style == "" {
		style = DefaultHighlightStyle
	}
	engine := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // bodies may embed raw HTML, as with the minimal flavor
		),
	)
	return &Extended{engine: engine}
}

// Render implements Renderer.
func (e *Extended) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := e.engine.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

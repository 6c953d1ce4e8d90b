package mdtex

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// goldmarkRenderer implements both markdown collaborators with goldmark
// (pure Go).
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a renderer with GFM extensions and chroma
// syntax highlighting.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for smaller HTML and external stylesheet control
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	)
	return &goldmarkRenderer{md: md}
}

// RenderBlocks converts markdown content to a block-level HTML fragment.
func (g *goldmarkRenderer) RenderBlocks(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBlockRender, err)
	}
	return buf.String(), nil
}

// RenderInline converts a markdown span and unwraps the paragraph element
// goldmark puts around bare spans, yielding inline-only output.
func (g *goldmarkRenderer) RenderInline(ctx context.Context, span string) (string, error) {
	out, err := g.RenderBlocks(ctx, span)
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = out[len("<p>") : len(out)-len("</p>")]
	}
	return out, nil
}

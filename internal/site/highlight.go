package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

// highlighter renders example text as class-based chroma HTML. The matching
// CSS is written once into style.css so markdown code blocks and example
// blocks share a palette.
type highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

func newHighlighter(styleName string) *highlighter {
	return &highlighter{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     styles.Get(styleName),
	}
}

// formatOptions are shared with goldmark-highlighting.
func (h *highlighter) formatOptions() []chromahtml.Option {
	return []chromahtml.Option{chromahtml.WithClasses(true)}
}

// Highlight returns text as highlighted HTML for the given format.
func (h *highlighter) Highlight(text string, format viewer.Format) (template.HTML, error) {
	lexer := lexers.Get(string(format))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", format, err)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", fmt.Errorf("formatting %s: %w", format, err)
	}
	return template.HTML(buf.String()), nil
}

// WriteCSS writes the style's class definitions.
func (h *highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

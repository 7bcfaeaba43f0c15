// Package markup renders laid-out blocks as Markdown.
//
// Bold is **x**, italic *x*, both ***x*** and underline <u>x</u>. Colors have
// no Markdown form and are dropped. A box with a border becomes a blockquote,
// one "> " level per bordered ancestor; a box with border none adds no level.
// Boxes inside a row sit mid-line, where a quote marker would read as text,
// so they add no level either.
// Horizontal padding is not representable and is ignored; vertical padding
// and margins become blank lines.
package markup

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// Quote is the prefix added per quoted level.
const Quote = "> "

// Renderer provides Markdown output
type Renderer struct{}

// New creates a markup renderer
func New() *Renderer {
	return &Renderer{}
}

// Chrome implements ui.Strategy.
func (r *Renderer) Chrome() layout.Chrome {
	return chrome{}
}

// Render implements ui.Strategy.
func (r *Renderer) Render(b *layout.Block) (string, error) {
	rows := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		rows[i] = strings.TrimRight(l.String(), " ")
	}
	return strings.Join(rows, "\n"), nil
}

type chrome struct{}

func (chrome) Frame(b *types.Box, _ int) layout.Frame {
	if b.Border.Resolved() == types.BorderNone {
		return layout.Frame{}
	}
	return layout.Frame{Left: Quote}
}

func (chrome) InlineFrame(*types.Box, int) layout.Frame {
	return layout.Frame{}
}

func (chrome) Decorate(st types.TextStyle) (string, string) {
	var open, end string
	switch {
	case st.Bold && st.Italic:
		open, end = "***", "***"
	case st.Bold:
		open, end = "**", "**"
	case st.Italic:
		open, end = "*", "*"
	}
	if st.Underline {
		open, end = "<u>"+open, end+"</u>"
	}
	return open, end
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"<", `\<`,
	">", `\>`,
	"[", `\[`,
	"]", `\]`,
)

// Escape backslash-escapes characters Markdown would read as syntax.
func (chrome) Escape(content string) string {
	return escaper.Replace(content)
}

func (chrome) FilterEdges(padding, margin layout.Edges) (layout.Edges, layout.Edges) {
	padding.Left, padding.Right = 0, 0
	margin.Left, margin.Right = 0, 0
	return padding, margin
}

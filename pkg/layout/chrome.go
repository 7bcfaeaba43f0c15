package layout

import (
	"github.com/arthur-debert/boxtext/pkg/types"
)

// Chrome is the per-format decoration the layout engine wraps around
// content. Each output format supplies one; the engine handles the geometry.
type Chrome interface {
	// Frame returns what is drawn around box at the given nesting depth.
	Frame(box *types.Box, depth int) Frame
	// Decorate returns literal markers written around every wrapped line of
	// a text run with style st. Their width counts against the budget.
	Decorate(st types.TextStyle) (open, close string)
	// Escape prepares raw text content for the output encoding.
	Escape(content string) string
}

// EdgeFilter is implemented by chromes that cannot represent every edge of
// a box, such as horizontal padding in a line-oriented markup. The engine
// lays the box out with the filtered edges.
type EdgeFilter interface {
	FilterEdges(padding, margin Edges) (Edges, Edges)
}

// InlineFramer is implemented by chromes whose frames only read correctly at
// the start of a line. Boxes laid out inside a row, where they sit beside
// their siblings, get the frame InlineFrame returns instead of Frame's.
type InlineFramer interface {
	InlineFrame(box *types.Box, depth int) Frame
}

// Frame is drawn around a box's padded content. Left and Right are written
// on every content line; Top and Bottom, when set, add full-width rules.
type Frame struct {
	Left   string
	Right  string
	Top    *Rule
	Bottom *Rule
	// Style is applied to every glyph of the frame.
	Style types.TextStyle
}

// Rule is a horizontal frame line: Left, Fill repeated across the inner
// width, then Right.
type Rule struct {
	Left  string
	Fill  string
	Right string
}

// BareChrome draws no frames and writes text untouched.
type BareChrome struct{}

// Frame implements Chrome.
func (BareChrome) Frame(*types.Box, int) Frame { return Frame{} }

// Decorate implements Chrome.
func (BareChrome) Decorate(types.TextStyle) (string, string) { return "", "" }

// Escape implements Chrome.
func (BareChrome) Escape(content string) string { return content }

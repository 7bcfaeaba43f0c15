// Package text renders laid-out blocks as plain text: no styling, no
// border glyphs. Nested boxes are shown by indentation.
package text

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// Indent is the number of columns each nesting level adds.
const Indent = 2

// Renderer provides plain text output without colors or styling
type Renderer struct{}

// New creates a new text renderer
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

type chrome struct {
	layout.BareChrome
}

// Frame indents every box below the root. Indentation accumulates, so a box
// at depth d starts d*Indent columns in, plus any left padding on the way.
func (chrome) Frame(_ *types.Box, depth int) layout.Frame {
	if depth == 0 {
		return layout.Frame{}
	}
	return layout.Frame{Left: strings.Repeat(" ", Indent)}
}

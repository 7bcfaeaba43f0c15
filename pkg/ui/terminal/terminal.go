// Package terminal renders laid-out blocks for an interactive terminal:
// border glyphs around boxes and ANSI styling around text.
package terminal

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/border"
	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/style"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// Renderer draws boxes with glyphs of one border kind.
type Renderer struct {
	kind  border.Kind
	color bool
}

// New creates a terminal renderer. With color false no escape sequence is
// ever written; borders are still drawn.
func New(kind border.Kind, color bool) *Renderer {
	return &Renderer{kind: kind, color: color}
}

// Kind returns the border kind the renderer draws with.
func (r *Renderer) Kind() border.Kind { return r.kind }

// Chrome implements ui.Strategy.
func (r *Renderer) Chrome() layout.Chrome {
	return chrome{kind: r.kind}
}

// Render implements ui.Strategy. Every line is encoded with its own style
// stack so a line never leaves styling active for the next one.
func (r *Renderer) Render(b *layout.Block) (string, error) {
	rows := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		rows[i] = r.encode(l)
	}
	return strings.Join(rows, "\n"), nil
}

func (r *Renderer) encode(l layout.Line) string {
	stack := style.NewStack(r.color)
	var sb strings.Builder
	for _, s := range l {
		if s.Style.IsZero() {
			sb.WriteString(s.Text)
			continue
		}
		sb.WriteString(stack.Wrap(s.Style, s.Text))
	}
	return strings.TrimRight(sb.String(), " ")
}

type chrome struct {
	layout.BareChrome
	kind border.Kind
}

func (c chrome) Frame(b *types.Box, _ int) layout.Frame {
	g := border.For(b.Border, c.kind)
	if g.IsEmpty() {
		return layout.Frame{}
	}
	return layout.Frame{
		Left:   g.Vertical,
		Right:  g.Vertical,
		Top:    &layout.Rule{Left: g.TopLeft, Fill: g.Horizontal, Right: g.TopRight},
		Bottom: &layout.Rule{Left: g.BottomLeft, Fill: g.Horizontal, Right: g.BottomRight},
		Style:  types.TextStyle{Color: b.BorderColor},
	}
}

// Package border maps a border style to the glyphs drawn around a box.
//
// Glyph sets come from lipgloss so boxes drawn here match the rest of the
// charmbracelet ecosystem. The ASCII kind deliberately collapses every style
// to "+", "-" and "|": there is no ASCII rendition of double or rounded
// corners and none is attempted.
package border

import (
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Kind is the character repertoire a border is drawn with.
type Kind int

const (
	// Unicode draws box-drawing characters, distinct per style.
	Unicode Kind = iota
	// ASCII draws +, - and | for every style.
	ASCII
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Unicode:
		return "unicode"
	case ASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// Glyphs is the set of strings used to draw one box border.
type Glyphs struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

// IsEmpty reports whether nothing is drawn.
func (g Glyphs) IsEmpty() bool {
	return g == Glyphs{}
}

// For returns the glyphs for style in the given kind. The none style, and any
// kind other than Unicode or ASCII, yields empty glyphs.
func For(style types.BorderStyle, kind Kind) Glyphs {
	style = style.Resolved()
	if style == types.BorderNone {
		return Glyphs{}
	}
	switch kind {
	case ASCII:
		return fromLipgloss(lipgloss.ASCIIBorder())
	case Unicode:
		switch style {
		case types.BorderSingle:
			return fromLipgloss(lipgloss.NormalBorder())
		case types.BorderDouble:
			return fromLipgloss(lipgloss.DoubleBorder())
		case types.BorderRounded:
			return fromLipgloss(lipgloss.RoundedBorder())
		}
	}
	return Glyphs{}
}

func fromLipgloss(b lipgloss.Border) Glyphs {
	return Glyphs{
		TopLeft:     b.TopLeft,
		TopRight:    b.TopRight,
		BottomLeft:  b.BottomLeft,
		BottomRight: b.BottomRight,
		Horizontal:  b.Top,
		Vertical:    b.Left,
	}
}

package types

import "regexp"

// Color is a named terminal color or a #rrggbb hex value. The empty string
// is the terminal default.
type Color string

const (
	ColorDefault Color = ""
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	ColorGray    Color = "gray"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NamedColors lists the supported color names in ANSI palette order.
var NamedColors = []Color{
	ColorBlack, ColorRed, ColorGreen, ColorYellow,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite, ColorGray,
}

// IsHex reports whether c is a #rrggbb value.
func (c Color) IsHex() bool {
	return hexColor.MatchString(string(c))
}

// Valid reports whether c is the default, a known name or a hex value.
func (c Color) Valid() bool {
	if c == ColorDefault || c.IsHex() {
		return true
	}
	for _, n := range NamedColors {
		if c == n {
			return true
		}
	}
	return false
}

// TextStyle holds the attributes applied to a text run.
type TextStyle struct {
	Color     Color
	Bold      bool
	Italic    bool
	Underline bool
}

// IsZero reports whether the style changes nothing.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}

// Merge layers child over s: flags accumulate, a declared child color wins.
func (s TextStyle) Merge(child TextStyle) TextStyle {
	out := TextStyle{
		Color:     s.Color,
		Bold:      s.Bold || child.Bold,
		Italic:    s.Italic || child.Italic,
		Underline: s.Underline || child.Underline,
	}
	if child.Color != ColorDefault {
		out.Color = child.Color
	}
	return out
}

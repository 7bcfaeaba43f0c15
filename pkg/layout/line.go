package layout

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/charmbracelet/x/ansi"
)

// Span is a run of text sharing one style. Span text never contains control
// sequences; encoders add them.
type Span struct {
	Text  string
	Style types.TextStyle
}

// Line is one output row made of spans.
type Line []Span

// Width returns the visual width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += Width(s.Text)
	}
	return w
}

// String returns the line's text without any styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func spaces(n int) Span {
	if n <= 0 {
		return Span{}
	}
	return Span{Text: strings.Repeat(" ", n)}
}

func blankLine(width int) Line {
	if width <= 0 {
		return Line{}
	}
	return Line{spaces(width)}
}

// padRight extends l with spaces up to width columns.
func padRight(l Line, width int) Line {
	if gap := width - l.Width(); gap > 0 {
		return append(append(Line{}, l...), spaces(gap))
	}
	return l
}

// surround returns left + l + right as a new line.
func surround(l Line, left, right Span) Line {
	out := make(Line, 0, len(l)+2)
	if left.Text != "" {
		out = append(out, left)
	}
	out = append(out, l...)
	if right.Text != "" {
		out = append(out, right)
	}
	return out
}

// clip truncates l to at most width columns.
func clip(l Line, width int) Line {
	if l.Width() <= width {
		return l
	}
	out := make(Line, 0, len(l))
	remaining := width
	for _, s := range l {
		if remaining <= 0 {
			break
		}
		w := Width(s.Text)
		if w <= remaining {
			out = append(out, s)
			remaining -= w
			continue
		}
		out = append(out, Span{Text: ansi.Truncate(s.Text, remaining, ""), Style: s.Style})
		break
	}
	return out
}

func maxWidth(lines []Line) int {
	w := 0
	for _, l := range lines {
		w = max(w, l.Width())
	}
	return w
}

// Package style turns text attributes into terminal control sequences.
//
// The Stack tracks nested TextStyle frames while a renderer walks the tree.
// Entering a frame emits only what changes relative to the current top, and
// leaving it emits what is needed to get back to the parent, so a child's
// attributes never leak into its siblings. When the last frame is popped the
// terminal is reset to its default state.
//
// Every attribute is written as its own sequence, in the fixed order bold,
// italic, underline, color. Callers (and tests) can therefore rely on exact
// substrings such as "\x1b[1m" for bold.
//
// The package also holds the lipgloss styles of the command-line interface.
package style

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/muesli/termenv"
)

// SGR parameters for the attribute-specific "off" codes termenv does not name.
const (
	boldOffSeq      = "22"
	italicOffSeq    = "23"
	underlineOffSeq = "24"
	defaultFgSeq    = "39"
)

// Reset is the sequence restoring the terminal default state.
var Reset = sgr(termenv.ResetSeq)

var namedColors = map[types.Color]termenv.ANSIColor{
	types.ColorBlack:   termenv.ANSIBlack,
	types.ColorRed:     termenv.ANSIRed,
	types.ColorGreen:   termenv.ANSIGreen,
	types.ColorYellow:  termenv.ANSIYellow,
	types.ColorBlue:    termenv.ANSIBlue,
	types.ColorMagenta: termenv.ANSIMagenta,
	types.ColorCyan:    termenv.ANSICyan,
	types.ColorWhite:   termenv.ANSIWhite,
	types.ColorGray:    termenv.ANSIBrightBlack,
}

// Stack is a nesting-aware style tracker. The zero value is a disabled stack.
// A Stack belongs to a single render call and must not be shared.
type Stack struct {
	enabled bool
	frames  []types.TextStyle
}

// NewStack returns a Stack. A disabled stack still tracks depth but every
// Push and Pop returns the empty string.
func NewStack(enabled bool) *Stack {
	return &Stack{enabled: enabled}
}

// Enabled reports whether the stack emits sequences.
func (s *Stack) Enabled() bool { return s.enabled }

// Depth returns the number of frames currently pushed.
func (s *Stack) Depth() int { return len(s.frames) }

// Top returns the effective style of the innermost frame.
func (s *Stack) Top() types.TextStyle {
	if len(s.frames) == 0 {
		return types.TextStyle{}
	}
	return s.frames[len(s.frames)-1]
}

// Push enters st, layered over the current top, and returns the sequences
// needed to get there.
func (s *Stack) Push(st types.TextStyle) string {
	prev := s.Top()
	next := prev.Merge(st)
	s.frames = append(s.frames, next)
	if !s.enabled {
		return ""
	}
	return Transition(prev, next)
}

// Pop leaves the innermost frame and returns the sequences restoring its
// parent. Popping the last frame returns a full reset when anything had been
// turned on. Popping an empty stack is a no-op.
func (s *Stack) Pop() string {
	if len(s.frames) == 0 {
		return ""
	}
	cur := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	if !s.enabled {
		return ""
	}
	if len(s.frames) == 0 {
		if cur.IsZero() {
			return ""
		}
		return Reset
	}
	return Transition(cur, s.Top())
}

// Wrap returns text entered with st and restored afterwards, using a fresh
// stack frame on s.
func (s *Stack) Wrap(st types.TextStyle, text string) string {
	enter := s.Push(st)
	leave := s.Pop()
	return enter + text + leave
}

// Transition returns the sequences that move the terminal from one effective
// style to another.
func Transition(from, to types.TextStyle) string {
	var b strings.Builder
	toggle := func(was, is bool, on, off string) {
		switch {
		case !was && is:
			b.WriteString(sgr(on))
		case was && !is:
			b.WriteString(sgr(off))
		}
	}
	toggle(from.Bold, to.Bold, termenv.BoldSeq, boldOffSeq)
	toggle(from.Italic, to.Italic, termenv.ItalicSeq, italicOffSeq)
	toggle(from.Underline, to.Underline, termenv.UnderlineSeq, underlineOffSeq)
	if from.Color != to.Color {
		if to.Color == types.ColorDefault {
			b.WriteString(sgr(defaultFgSeq))
		} else if seq := ColorSequence(to.Color); seq != "" {
			b.WriteString(sgr(seq))
		}
	}
	return b.String()
}

// ColorSequence returns the SGR parameters selecting c as the foreground,
// or "" for the default or an unknown color.
func ColorSequence(c types.Color) string {
	if ansi, ok := namedColors[c]; ok {
		return ansi.Sequence(false)
	}
	if c.IsHex() {
		return termenv.RGBColor(string(c)).Sequence(false)
	}
	return ""
}

func sgr(params string) string {
	return termenv.CSI + params + "m"
}

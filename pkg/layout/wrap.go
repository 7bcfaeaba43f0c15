package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// Width returns the visual width of s in terminal columns. Control sequences
// occupy no columns.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Sanitize removes everything from s that would move the cursor or change
// the terminal state: control sequences are stripped, tabs are expanded and
// the remaining C0 controls (other than newline) are dropped. Styling is the
// engine's job, never the content's.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// Overflow stands in for a grapheme wider than the whole wrap width, so
// content that cannot be shown still leaves a mark.
const Overflow = "…"

// Wrap splits text into lines no wider than width columns. Explicit newlines
// always break. Words are packed greedily, one space apart; a word wider than
// width is placed on its own lines, hard-split at the width boundary. A width
// of zero or less disables wrapping. The text is expected to be sanitized.
func Wrap(text string, width int) []string {
	return WrapEscaped(text, width, nil)
}

// WrapEscaped wraps text like Wrap, measuring and emitting every piece
// through escape. Splits fall between graphemes of the raw text, so an
// escape sequence is never cut in two. A nil escape writes text as is.
func WrapEscaped(text string, width int, escape func(string) string) []string {
	if escape == nil {
		escape = func(s string) string { return s }
	}
	w := wrapper{width: width, escape: escape}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		if width <= 0 {
			out = append(out, escape(para))
			continue
		}
		out = append(out, w.paragraph(para)...)
	}
	return out
}

type wrapper struct {
	width  int
	escape func(string) string
}

func (w wrapper) measure(s string) int {
	return Width(w.escape(s))
}

func (w wrapper) paragraph(para string) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		if curW > 0 {
			lines = append(lines, w.escape(cur.String()))
			cur.Reset()
			curW = 0
		}
	}

	for _, word := range words {
		ww := w.measure(word)
		switch {
		case ww > w.width:
			flush()
			lines = append(lines, w.split(word)...)
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= w.width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(word)
			curW = ww
		}
	}
	flush()
	return lines
}

// split hard-wraps a word wider than the width, one grapheme at a time.
// A grapheme that does not fit even on an empty line becomes Overflow.
func (w wrapper) split(word string) []string {
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		piece := w.escape(g.Str())
		pw := Width(piece)
		if pw > w.width {
			piece, pw = Overflow, Width(Overflow)
		}
		if curW > 0 && curW+pw > w.width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(piece)
		curW += pw
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

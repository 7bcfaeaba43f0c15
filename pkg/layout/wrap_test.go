package layout_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "hello world",
			width: 20,
			want:  []string{"hello world"},
		},
		{
			name:  "greedy packing",
			text:  "the quick brown fox",
			width: 10,
			want:  []string{"the quick", "brown fox"},
		},
		{
			name:  "exact fit",
			text:  "ab cd",
			width: 5,
			want:  []string{"ab cd"},
		},
		{
			name:  "long token is hard split on its own lines",
			text:  "a verylongword b",
			width: 4,
			want:  []string{"a", "very", "long", "word", "b"},
		},
		{
			name:  "token equal to width stays whole",
			text:  "abcd efgh",
			width: 4,
			want:  []string{"abcd", "efgh"},
		},
		{
			name:  "explicit newlines break",
			text:  "one\ntwo three",
			width: 20,
			want:  []string{"one", "two three"},
		},
		{
			name:  "blank paragraph survives",
			text:  "one\n\ntwo",
			width: 20,
			want:  []string{"one", "", "two"},
		},
		{
			name:  "no width keeps lines whole",
			text:  "a  long   line\nnext",
			width: 0,
			want:  []string{"a  long   line", "next"},
		},
		{
			name:  "empty text",
			text:  "",
			width: 5,
			want:  []string{""},
		},
		{
			name:  "wide rune wider than the width leaves a mark",
			text:  "日本",
			width: 1,
			want:  []string{layout.Overflow, layout.Overflow},
		},
		{
			name:  "wide runes count two columns",
			text:  "日本 語",
			width: 4,
			want:  []string{"日本", "語"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Wrap(tt.text, tt.width))
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
		"tempor incididunt ut labore et dolore magna aliqua supercalifragilistic"
	for width := 1; width <= 30; width++ {
		for _, line := range layout.Wrap(text, width) {
			assert.LessOrEqual(t, layout.Width(line), width, "width %d line %q", width, line)
		}
	}
}

func TestWrapKeepsEveryWord(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	got := strings.Join(layout.Wrap(text, 7), " ")
	assert.Equal(t, text, got)
}

func TestWrapEscaped(t *testing.T) {
	escape := strings.NewReplacer("*", `\*`).Replace

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"escaped width decides packing", "a* b", 3, []string{`a\*`, "b"}},
		{"split keeps escape whole", "abc*defg", 4, []string{"abc", `\*de`, "fg"}},
		{"no width escapes every line", "*a\n*b", 0, []string{`\*a`, `\*b`}},
		{"escape too wide for the width", "**", 1, []string{layout.Overflow, layout.Overflow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.WrapEscaped(tt.text, tt.width, escape))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips sgr", "\x1b[31mred\x1b[0m", "red"},
		{"expands tabs", "a\tb", "a    b"},
		{"normalizes crlf", "a\r\nb", "a\nb"},
		{"drops controls", "a\x07b\x00c", "abc"},
		{"keeps unicode", "héllo ✓", "héllo ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Sanitize(tt.in))
		})
	}
}

func TestWidthIgnoresControlSequences(t *testing.T) {
	assert.Equal(t, 3, layout.Width("\x1b[1mabc\x1b[0m"))
	assert.Equal(t, 4, layout.Width("日本"))
}

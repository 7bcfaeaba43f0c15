package ui

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto detects the format from the environment
	FormatAuto Format = iota
	// FormatUnicode draws box-drawing borders and ANSI styling
	FormatUnicode
	// FormatASCII draws + - | borders and ANSI styling
	FormatASCII
	// FormatPlain renders text only, indenting nested containers
	FormatPlain
	// FormatStructured serializes the tree as {type, props, children} records
	FormatStructured
	// FormatMarkup renders Markdown
	FormatMarkup
)

// Formats lists the concrete formats in a stable order.
var Formats = []Format{FormatUnicode, FormatASCII, FormatPlain, FormatStructured, FormatMarkup}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatUnicode:
		return "unicode"
	case FormatASCII:
		return "ascii"
	case FormatPlain:
		return "plain"
	case FormatStructured:
		return "structured"
	case FormatMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the format draws borders and emits styling.
func (f Format) IsTerminal() bool {
	return f == FormatUnicode || f == FormatASCII
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "unicode", "term", "terminal":
		return FormatUnicode, nil
	case "ascii":
		return FormatASCII, nil
	case "plain", "text":
		return FormatPlain, nil
	case "structured", "json", "yaml":
		return FormatStructured, nil
	case "markup", "md", "markdown":
		return FormatMarkup, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidFormat, "unknown format: %s", s).
			WithDetail("value", s)
	}
}

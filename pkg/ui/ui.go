// Package ui renders a node tree to a string in one of five formats.
//
// Render is the entry point: it validates the tree, lays it out for the
// chosen format and hands the laid-out block to that format's Strategy.
// FormatAuto picks a format from the environment (see DetectFormat).
package ui

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/boxtext/pkg/border"
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/logging"
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/arthur-debert/boxtext/pkg/ui/json"
	"github.com/arthur-debert/boxtext/pkg/ui/markup"
	"github.com/arthur-debert/boxtext/pkg/ui/terminal"
	"github.com/arthur-debert/boxtext/pkg/ui/text"
	"github.com/rs/zerolog"
)

// Strategy turns a laid-out block into output text. Chrome tells the layout
// engine how the format decorates boxes and text.
type Strategy interface {
	Chrome() layout.Chrome
	Render(b *layout.Block) (string, error)
}

// Options control a render call. The zero value detects the format from the
// process environment, does not wrap and keeps color on.
type Options struct {
	Format Format
	// Width is the maximum line width in columns; 0 means auto.
	Width int
	// NoColor suppresses every styling sequence.
	NoColor bool
	// Env is consulted when Format is FormatAuto. Nil means the process
	// environment with stdout as the output.
	Env Environment
	// Recorder, when set, receives one Event per pipeline phase.
	Recorder Recorder
	// Structured selects the encoding of FormatStructured.
	Structured json.Encoding
	// Logger receives debug and trace events of the call. Nil keeps the
	// call silent.
	Logger *zerolog.Logger
}

// Pipeline phases reported to a Recorder.
const (
	PhaseDetect   = "detect"
	PhaseValidate = "validate"
	PhaseLayout   = "layout"
	PhaseRender   = "render"
)

// Event describes one finished pipeline phase.
type Event struct {
	Phase    string
	Format   Format
	Duration time.Duration
	Err      error
}

// Recorder observes a render call.
type Recorder interface {
	Record(Event)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(Event)

// Record implements Recorder.
func (f RecorderFunc) Record(e Event) { f(e) }

// NewStrategy creates the strategy for a concrete format.
func NewStrategy(format Format, opts Options) (Strategy, error) {
	color := !opts.NoColor
	switch format {
	case FormatUnicode:
		return terminal.New(border.Unicode, color), nil
	case FormatASCII:
		return terminal.New(border.ASCII, color), nil
	case FormatPlain:
		return text.New(), nil
	case FormatStructured:
		return json.New(opts.Structured), nil
	case FormatMarkup:
		return markup.New(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidFormat, "no strategy for format %s", format).
			WithDetail("format", format.String())
	}
}

// Render renders node according to opts. On error no output is returned.
func Render(node types.Node, opts Options) (string, error) {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	done := logging.LogOperationStart(logger, "render")
	defer done()

	if opts.Width < 0 {
		return "", errors.Newf(errors.ErrInvalidConstraint, "width must not be negative, got %d", opts.Width).
			WithDetail("field", "width").
			WithDetail("value", opts.Width)
	}

	r := run{rec: opts.Recorder, format: opts.Format}

	if r.format == FormatAuto {
		env := opts.Env
		if env == nil {
			env = ProcessEnv{File: os.Stdout}
		}
		r.phase(PhaseDetect, func() error {
			d := Explain(env)
			r.format = d.Format
			logger.Debug().Str("format", d.Format.String()).Str("reason", d.Reason).Msg("Detected output format")
			return nil
		})
	}

	strategy, err := NewStrategy(r.format, opts)
	if err != nil {
		return "", err
	}

	if err := r.phase(PhaseValidate, func() error { return layout.Validate(node) }); err != nil {
		logger.Debug().Err(err).Msg("Tree rejected")
		return "", err
	}

	var block *layout.Block
	err = r.phase(PhaseLayout, func() error {
		var err error
		block, err = layout.Layout(node, layout.Constraints{Width: opts.Width, Chrome: strategy.Chrome()})
		return err
	})
	if err != nil {
		return "", err
	}

	var out string
	err = r.phase(PhaseRender, func() error {
		var err error
		out, err = strategy.Render(block)
		return err
	})
	if err != nil {
		return "", err
	}

	logger.Trace().
		Str("format", r.format.String()).
		Int("width", opts.Width).
		Int("lines", strings.Count(out, "\n")+1).
		Msg("Rendered tree")
	return out, nil
}

// Fprint renders node and writes it to w followed by a newline.
func Fprint(w io.Writer, node types.Node, opts Options) error {
	if opts.Format == FormatAuto && opts.Env == nil {
		// Anything but a file is not a terminal.
		f, _ := w.(*os.File)
		opts.Env = ProcessEnv{File: f}
	}
	out, err := Render(node, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write output")
	}
	return nil
}

type run struct {
	rec    Recorder
	format Format
}

func (r *run) phase(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if r.rec != nil {
		r.rec.Record(Event{Phase: name, Format: r.format, Duration: time.Since(start), Err: err})
	}
	return err
}

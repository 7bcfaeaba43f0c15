package cli

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/boxtext/pkg/config"
	"github.com/arthur-debert/boxtext/pkg/element"
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/logging"
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/arthur-debert/boxtext/pkg/ui"
	"github.com/arthur-debert/boxtext/pkg/ui/json"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type renderFlags struct {
	format     string
	width      int
	fit        bool
	noColor    bool
	input      string
	structured string
}

func newRenderCmd(a *app) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a layout document",
		Long: `Render reads a layout document and writes it in the selected format.

The document is a tree of {type, props, children} records in JSON, YAML or
TOML, or the equivalent XML (<Box borderStyle="double"><Text>Hi</Text></Box>).
Without a file, or with "-", the document is read from standard input.`,
		Example: `  # Render with the format detected for this terminal
  boxtext render tree.json

  # Force ASCII borders and wrap at 40 columns
  boxtext render --format ascii --width 40 tree.yaml

  # Convert to Markdown
  cat tree.xml | boxtext render --input xml --format markup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			node, err := readTree(cmd.InOrStdin(), path, pick(cmd, "input", f.input, a.cfg.Input.Syntax))
			if err != nil {
				return err
			}

			opts, err := renderOptions(cmd, f, a.cfg)
			if err != nil {
				return err
			}
			return ui.Fprint(cmd.OutOrStdout(), node, opts)
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: auto, unicode, ascii, plain, structured, markup (aliases: term, text, json, yaml, md)")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Maximum line width in columns (0: natural width)")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "Wrap to the width of the attached terminal")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Never emit color or style sequences")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Input syntax: json, yaml, toml, xml (default: from the file extension)")
	cmd.Flags().StringVar(&f.structured, "structured", "", "Structured encoding: json or yaml")
	return cmd
}

// pick returns the flag value when the flag was given, else the fallback.
func pick(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return fallback
}

// readTree reads and parses the document at path ("-" for in).
func readTree(in io.Reader, path, syntaxName string) (types.Node, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to read %s", path).WithDetail("path", path)
	}

	syntax := element.SyntaxFromPath(path)
	if syntaxName != "" {
		if syntax, err = element.ParseSyntax(syntaxName); err != nil {
			return nil, err
		}
	}
	return element.Parse(data, syntax)
}

// renderOptions merges flags over configuration.
func renderOptions(cmd *cobra.Command, f renderFlags, cfg *config.Config) (ui.Options, error) {
	formatName := pick(cmd, "format", f.format, cfg.Render.Format)
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return ui.Options{}, err
	}

	structured := pick(cmd, "structured", f.structured, cfg.Render.Structured)
	if strings.EqualFold(formatName, "yaml") {
		structured = "yaml"
	}
	var enc json.Encoding
	switch strings.ToLower(structured) {
	case "", "json":
		enc = json.EncodingJSON
	case "yaml":
		enc = json.EncodingYAML
	default:
		return ui.Options{}, errors.Newf(errors.ErrInvalidFormat, "unknown structured encoding: %s", structured).
			WithDetail("value", structured)
	}

	width := cfg.Render.Width
	if cmd.Flags().Changed("width") {
		width = f.width
	}
	if f.fit {
		if w, ok := terminalWidth(cmd.OutOrStdout()); ok {
			width = w
		}
	}

	noColor := !cfg.Render.Color
	if cmd.Flags().Changed("no-color") {
		noColor = f.noColor
	}

	logger := logging.GetLogger("ui")
	return ui.Options{
		Format:     format,
		Width:      width,
		NoColor:    noColor,
		Structured: enc,
		Logger:     &logger,
	}, nil
}

// terminalWidth reports the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

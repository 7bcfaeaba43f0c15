package cli

import (
	"fmt"

	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/arthur-debert/boxtext/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		input string
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Render a layout document as Markdown and display it",
		Long: `Preview renders the document in the markup format and displays the
Markdown through glamour, showing how the document reads once a Markdown
viewer has formatted it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			node, err := readTree(cmd.InOrStdin(), path, pick(cmd, "input", input, a.cfg.Input.Syntax))
			if err != nil {
				return err
			}

			out, err := preview(node, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input syntax: json, yaml, toml, xml")
	cmd.Flags().StringVar(&style, "style", "auto", `Glamour style: "dark", "light", "notty", "auto" or a style file`)
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Word-wrap width (0: glamour default)")
	return cmd
}

// preview renders node as Markdown and formats it with glamour. When glamour
// fails the Markdown is returned unformatted.
func preview(node types.Node, style string, width int) (string, error) {
	md, err := ui.Render(node, ui.Options{Format: ui.FormatMarkup, Width: width})
	if err != nil {
		return "", err
	}

	var options []glamour.TermRendererOption
	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log.Debug().Err(err).Msg("Glamour unavailable, showing raw markdown")
		return md + "\n", nil
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("Glamour failed, showing raw markdown")
		return md + "\n", nil
	}
	return rendered, nil
}

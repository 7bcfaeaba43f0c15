package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/boxtext/pkg/style"
	"github.com/arthur-debert/boxtext/pkg/ui"
	"github.com/spf13/cobra"
)

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the output format detected for this environment",
		Long: `Detect runs the format detection used when no format is given and prints
the chosen format with the rule that decided it. The rules apply in order:
NO_COLOR or CLICOLOR=0, a CI environment, output that is not a terminal, a
minimal TERM or non UTF-8 locale, and finally an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var env ui.Environment = ui.ProcessEnv{}
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				env = ui.ProcessEnv{File: f}
			}
			d := ui.Explain(env)

			configured := a.cfg.Render.Format
			_, err := fmt.Fprintln(cmd.OutOrStdout(), style.KeyValues(
				"format", d.Format.String(),
				"reason", d.Reason,
				"configured", configured,
			))
			return err
		},
	}
}

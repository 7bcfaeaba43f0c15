package cli

import (
	"strings"

	"github.com/arthur-debert/boxtext/internal/version"
	"github.com/arthur-debert/boxtext/pkg/config"
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by every command of one invocation.
type app struct {
	verbosity int
	settings  []string
	cfg       *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "boxtext",
		Short: "Render box-and-text layout trees for terminals, pipes and documents",
		Long: `boxtext renders a tree of boxes and styled text as Unicode or ASCII
terminal output, plain text, Markdown or structured data.

Trees are read as JSON, YAML, TOML or XML documents. When no format is given
the format is picked from the environment: color is disabled by NO_COLOR and
in CI, pipes get plain text and minimal terminals get ASCII borders.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseSettings(a.settings)
			if err != nil {
				return err
			}
			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(max(a.verbosity, cfg.Log.Verbosity))
			logging.LogCommand(cmd.Name(), args)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringArrayVar(&a.settings, "set", nil, "Override a configuration key (e.g. --set render.width=60)")

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newDetectCmd(a))
	rootCmd.AddCommand(newPreviewCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	log.Trace().Msg("Root command created")
	return rootCmd
}

// parseSettings turns key=value pairs into configuration overrides.
func parseSettings(settings []string) (map[string]interface{}, error) {
	if len(settings) == 0 {
		return nil, nil
	}
	overrides := make(map[string]interface{}, len(settings))
	for _, s := range settings {
		key, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "--set expects key=value, got %q", s).
				WithDetail("value", s)
		}
		overrides[strings.TrimSpace(key)] = value
	}
	return overrides, nil
}

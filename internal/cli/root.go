package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prepdeck/internal/appearance"
	"prepdeck/internal/store"
	"prepdeck/internal/tui"
)

type App struct {
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "prepdeck",
		Short:        "prepdeck exam-prep companion (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive appearance picker
  prepdeck

  # Scriptable commands
  prepdeck appearance show
  prepdeck appearance set --scheme coralPink --theme system
  prepdeck docs appearance
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// An unrecognized token lands here with args; scripts need a
			// non-zero exit for typos, not help text.
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			// No subcommand => interactive TUI.
			return tui.Run(newController())
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PREPDECK_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newAppearanceCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))

	return cmd
}

// newController wires the production stack: layered persistence, a fresh
// document sink, and the terminal's OS dark-mode detection.
func newController() *appearance.Controller {
	return appearance.NewController(store.NewAdapter(), appearance.NewDocument(), tui.SystemPrefersDark)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

package cli

import (
	"github.com/spf13/cobra"

	"prepdeck/internal/format"
	"prepdeck/internal/store"
)

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report on appearance storage health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return format.Write(cmd.OutOrStdout(), store.CollectHealth(), app.Format, app.PrettyJSON)
		},
	}
}

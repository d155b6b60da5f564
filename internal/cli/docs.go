package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prepdeck/internal/docs"
	"prepdeck/internal/format"
	"prepdeck/internal/tui"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return format.Write(cmd.OutOrStdout(), map[string]any{"topics": docs.Topics()}, app.Format, app.PrettyJSON)
			}
			md, ok := docs.Get(args[0])
			if !ok {
				return unknownTopicError{topic: args[0]}
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(md))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(md, 80, tui.SystemPrefersDark()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown without rendering")
	return cmd
}

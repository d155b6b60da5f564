package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prepdeck/internal/appearance"
	"prepdeck/internal/format"
	"prepdeck/internal/store"
	"prepdeck/internal/tui"
)

// appearanceView is the `appearance show` payload: the stored settings plus
// the derived resolution, which is never persisted.
type appearanceView struct {
	Theme       string `json:"theme"`
	ColorScheme string `json:"colorScheme"`
	FontSize    string `json:"fontSize"`
	VisualStyle string `json:"visualStyle"`
	DarkMode    bool   `json:"darkMode"`
	KnownScheme bool   `json:"knownScheme"`
}

func viewOf(s appearance.Settings) appearanceView {
	return appearanceView{
		Theme:       string(s.Theme),
		ColorScheme: string(s.ColorScheme),
		FontSize:    string(s.FontSize),
		VisualStyle: string(s.VisualStyle),
		DarkMode:    s.ResolveDark(tui.SystemPrefersDark()),
		KnownScheme: appearance.KnownScheme(s.ColorScheme),
	}
}

func newAppearanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appearance",
		Short: "Show or change appearance settings",
	}
	cmd.AddCommand(newAppearanceShowCmd(app))
	cmd.AddCommand(newAppearanceSetCmd(app))
	cmd.AddCommand(newAppearanceResetCmd(app))
	return cmd
}

func newAppearanceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective appearance settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Read-only: no apply, no write-through, no journal entry.
			s, err := store.NewAdapter().Load()
			if err != nil {
				s = appearance.Defaults()
			}
			return format.Write(cmd.OutOrStdout(), viewOf(s), app.Format, app.PrettyJSON)
		},
	}
}

func newAppearanceSetCmd(app *App) *cobra.Command {
	var (
		theme       string
		scheme      string
		fontSize    string
		visualStyle string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update one or more appearance settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := store.NewAdapter()
			s, err := adapter.Load()
			if err != nil {
				s = appearance.Defaults()
			}

			if v := strings.TrimSpace(theme); v != "" {
				switch appearance.Theme(v) {
				case appearance.ThemeLight, appearance.ThemeDark, appearance.ThemeSystem:
					s.Theme = appearance.Theme(v)
				default:
					return errInvalidValue("theme", v, "light", "dark", "system")
				}
			}
			if v := strings.TrimSpace(scheme); v != "" {
				// Unknown keys are accepted (they render as aquaBlue), but
				// warn so typos are visible.
				if !appearance.KnownScheme(appearance.Scheme(v)) {
					fmt.Fprintf(os.Stderr, "warning: unknown scheme %q; it will render as aquaBlue\n", v)
				}
				s.ColorScheme = appearance.Scheme(v)
			}
			if v := strings.TrimSpace(fontSize); v != "" {
				switch appearance.FontSize(v) {
				case appearance.FontSmall, appearance.FontMedium, appearance.FontLarge:
					s.FontSize = appearance.FontSize(v)
				default:
					return errInvalidValue("font-size", v, "small", "medium", "large")
				}
			}
			if v := strings.TrimSpace(visualStyle); v != "" {
				switch appearance.VisualStyle(v) {
				case appearance.StyleMemphis, appearance.StyleMinimalist:
					s.VisualStyle = appearance.VisualStyle(v)
				default:
					return errInvalidValue("visual-style", v, "memphis", "minimalist")
				}
			}

			ctrl := appearance.NewController(adapter, appearance.NewDocument(), tui.SystemPrefersDark)
			applied := ctrl.Apply(s)
			return format.Write(cmd.OutOrStdout(), viewOf(applied), app.Format, app.PrettyJSON)
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "Display mode (light|dark|system)")
	cmd.Flags().StringVar(&scheme, "scheme", "", "Color scheme (e.g. aquaBlue, coralPink)")
	cmd.Flags().StringVar(&fontSize, "font-size", "", "Font size (small|medium|large)")
	cmd.Flags().StringVar(&visualStyle, "visual-style", "", "Visual style (memphis|minimalist)")
	return cmd
}

func newAppearanceResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default appearance in both scopes",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := store.NewAdapter()
			if err := adapter.Reset(); err != nil {
				// Best effort: still apply defaults for this process.
				fmt.Fprintf(os.Stderr, "warning: reset: %v\n", err)
			}
			ctrl := appearance.NewController(adapter, appearance.NewDocument(), tui.SystemPrefersDark)
			applied := ctrl.Apply(appearance.Defaults())
			return format.Write(cmd.OutOrStdout(), viewOf(applied), app.Format, app.PrettyJSON)
		},
	}
}

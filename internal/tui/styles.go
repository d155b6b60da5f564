package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"prepdeck/internal/appearance"
)

// Styles is everything the picker renders with, derived from the applied
// document rather than hardcoded colors. Rebuilt on every broadcast, so a
// scheme change from a concurrent CLI invocation restyles the live TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Accent   lipgloss.Style
	Badge    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Surface  lipgloss.Style
	Help     lipgloss.Style

	// ListPad comes from data-font-size: the TUI analog of the CSS that
	// consumes it.
	ListPad int
}

// NewStyles reads marker classes, attributes, and custom properties off the
// document the controller committed.
func NewStyles(doc *appearance.Document) Styles {
	primary := lipgloss.Color(doc.Prop(appearance.PropPrimary))
	accent := lipgloss.Color(doc.Prop(appearance.PropAccent))
	light := lipgloss.Color(doc.Prop(appearance.PropLight))
	medium := lipgloss.Color(doc.Prop(appearance.PropMedium))
	contrast := lipgloss.Color(doc.Prop(appearance.PropContrast))
	badge := lipgloss.Color(doc.Prop(appearance.PropBadge))

	s := Styles{
		Title:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(medium),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Badge:    lipgloss.NewStyle().Padding(0, 1).Foreground(contrast).Background(badge),
		Muted:    lipgloss.NewStyle().Foreground(medium).Faint(doc.HasClass("dark")),
		Selected: lipgloss.NewStyle().Foreground(contrast).Background(medium).Bold(true),
		// Surfaces carry no background color on purpose: the terminal's own
		// backdrop stays visible, mirroring the translucency contract.
		Surface: lipgloss.NewStyle().Foreground(light),
		Help:    lipgloss.NewStyle().Foreground(medium),
	}

	if doc.HasClass("minimalist-style") {
		s.Title = s.Title.Bold(false)
		s.Badge = lipgloss.NewStyle().Foreground(badge)
	} else {
		// Memphis mode keeps the decorated look.
		s.Title = s.Title.Underline(true)
	}

	switch doc.Attr("data-font-size") {
	case string(appearance.FontSmall):
		s.ListPad = 0
	case string(appearance.FontLarge):
		s.ListPad = 2
	default:
		s.ListPad = 1
	}
	return s
}

// TitleBar renders a centered, width-clamped title line.
func (s Styles) TitleBar(width int, text string) string {
	t := s.Title.Render(text)
	w := xansi.StringWidth(t)
	if width <= w {
		return t
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + t
}

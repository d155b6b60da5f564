package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/appearance"
	"prepdeck/internal/docs"
)

// The appearance picker: a small bubbletea app over the controller. All
// edits go through Controller.Apply, and the picker also subscribes to the
// broadcaster, so changes made by a concurrent CLI invocation (or an OS
// dark-mode flip in system theme) restyle the live view.

type section int

const (
	sectionScheme section = iota
	sectionTheme
	sectionFont
	sectionStyle
	sectionCount
)

// settingsMsg carries a broadcast payload into the update loop.
type settingsMsg struct {
	settings appearance.Settings
}

type schemeItem struct {
	scheme appearance.Scheme
}

func (i schemeItem) Title() string       { return string(i.scheme) }
func (i schemeItem) Description() string { return appearance.PaletteFor(i.scheme).Primary }
func (i schemeItem) FilterValue() string { return string(i.scheme) }

type pickerModel struct {
	ctrl   *appearance.Controller
	styles Styles

	width  int
	height int

	section  section
	schemes  list.Model
	themeIdx int
	fontIdx  int
	styleIdx int

	showHelp bool
	status   string
}

var (
	themeChoices = []appearance.Theme{appearance.ThemeLight, appearance.ThemeDark, appearance.ThemeSystem}
	fontChoices  = []appearance.FontSize{appearance.FontSmall, appearance.FontMedium, appearance.FontLarge}
	styleChoices = []appearance.VisualStyle{appearance.StyleMemphis, appearance.StyleMinimalist}
)

func newPickerModel(ctrl *appearance.Controller, s appearance.Settings) pickerModel {
	items := make([]list.Item, 0, len(appearance.Schemes()))
	selected := 0
	for i, sc := range appearance.Schemes() {
		if sc == s.ColorScheme {
			selected = i
		}
		items = append(items, schemeItem{scheme: sc})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Color scheme"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Select(selected)

	m := pickerModel{
		ctrl:    ctrl,
		styles:  NewStyles(ctrl.Document()),
		schemes: l,
	}
	m.syncIndexes(s)
	return m
}

func (m *pickerModel) syncIndexes(s appearance.Settings) {
	for i, t := range themeChoices {
		if t == s.Theme {
			m.themeIdx = i
		}
	}
	for i, f := range fontChoices {
		if f == s.FontSize {
			m.fontIdx = i
		}
	}
	for i, v := range styleChoices {
		if v == s.VisualStyle {
			m.styleIdx = i
		}
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.schemes.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case settingsMsg:
		// Rebuild styles from the committed document; also re-sync the
		// terminal background so adaptive colors follow the new resolution.
		m.styles = NewStyles(m.ctrl.Document())
		SyncTerminalBackground(m.ctrl.IsDarkMode())
		m.syncIndexes(msg.settings)
		m.status = fmt.Sprintf("applied %s/%s", msg.settings.Theme, msg.settings.ColorScheme)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab":
			m.section = (m.section + 1) % sectionCount
			return m, nil
		case "shift+tab":
			m.section = (m.section + sectionCount - 1) % sectionCount
			return m, nil
		case "enter", " ":
			m.applySelection()
			return m, nil
		}
		if m.section == sectionScheme {
			var cmd tea.Cmd
			m.schemes, cmd = m.schemes.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "up", "k":
			m.moveChoice(-1)
		case "down", "j":
			m.moveChoice(1)
		}
		return m, nil
	}
	return m, nil
}

func (m *pickerModel) moveChoice(delta int) {
	wrap := func(idx, n int) int { return (idx + delta + n) % n }
	switch m.section {
	case sectionTheme:
		m.themeIdx = wrap(m.themeIdx, len(themeChoices))
	case sectionFont:
		m.fontIdx = wrap(m.fontIdx, len(fontChoices))
	case sectionStyle:
		m.styleIdx = wrap(m.styleIdx, len(styleChoices))
	}
}

func (m *pickerModel) applySelection() {
	s := m.ctrl.Current()
	switch m.section {
	case sectionScheme:
		if it, ok := m.schemes.SelectedItem().(schemeItem); ok {
			s.ColorScheme = it.scheme
		}
	case sectionTheme:
		s.Theme = themeChoices[m.themeIdx]
	case sectionFont:
		s.FontSize = fontChoices[m.fontIdx]
	case sectionStyle:
		s.VisualStyle = styleChoices[m.styleIdx]
	}
	// Apply broadcasts; the settingsMsg subscriber refreshes this model.
	m.ctrl.Apply(s)
}

func (m pickerModel) View() string {
	if m.showHelp {
		md, _ := docs.Get("appearance")
		return RenderMarkdown(md, max(m.width-2, 20), m.ctrl.IsDarkMode())
	}

	var b strings.Builder
	b.WriteString(m.styles.TitleBar(m.width, "prepdeck appearance"))
	b.WriteString("\n\n")

	cursor := func(sec section, label string) string {
		if m.section == sec {
			return m.styles.Accent.Render("> " + label)
		}
		return m.styles.Muted.Render("  " + label)
	}

	b.WriteString(cursor(sectionScheme, "Scheme"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).PaddingTop(m.styles.ListPad).Render(m.schemes.View()))
	b.WriteString("\n")

	row := func(sec section, label string, choices []string, idx int) {
		b.WriteString(cursor(sec, label))
		b.WriteString("  ")
		for i, c := range choices {
			if i == idx {
				b.WriteString(m.styles.Selected.Render(" " + c + " "))
			} else {
				b.WriteString(m.styles.Surface.Render(" " + c + " "))
			}
		}
		b.WriteString("\n")
	}
	row(sectionTheme, "Theme ", themeStrings(), m.themeIdx)
	row(sectionFont, "Font  ", fontStrings(), m.fontIdx)
	row(sectionStyle, "Style ", styleStrings(), m.styleIdx)

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Badge.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab: section · enter: apply · ?: help · q: quit"))
	return b.String()
}

func themeStrings() []string {
	out := make([]string, len(themeChoices))
	for i, t := range themeChoices {
		out[i] = string(t)
	}
	return out
}

func fontStrings() []string {
	out := make([]string, len(fontChoices))
	for i, f := range fontChoices {
		out[i] = string(f)
	}
	return out
}

func styleStrings() []string {
	out := make([]string, len(styleChoices))
	for i, v := range styleChoices {
		out[i] = string(v)
	}
	return out
}

// Run loads + applies the persisted settings, starts the system-preference
// watcher, and runs the picker until quit.
func Run(ctrl *appearance.Controller) error {
	ApplyColorProfilePreference()
	s := ctrl.Load()
	SyncTerminalBackground(ctrl.IsDarkMode())

	p := tea.NewProgram(newPickerModel(ctrl, s), tea.WithAltScreen())

	unsubscribe := ctrl.Subscribe(func(s appearance.Settings) {
		p.Send(settingsMsg{settings: s})
	})
	defer unsubscribe()

	stopWatch := ctrl.WatchSystem(appearance.DefaultWatchInterval, nil)
	defer stopWatch()

	_, err := p.Run()
	return err
}

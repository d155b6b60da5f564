package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Building a renderer with
	// WithAutoStyle can block on terminal capability queries in some
	// setups, so we always pass an explicit style and cache the result.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders embedded docs with the style matching the resolved
// dark mode. On any renderer failure it falls back to the raw markdown;
// help output must never error out.
func RenderMarkdown(md string, width int, isDark bool) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	style := "light"
	if isDark {
		style = "dark"
	}

	key := style + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

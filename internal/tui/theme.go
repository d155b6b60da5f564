package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Terminal-level appearance plumbing.
//
// The picker must stay readable on both light and dark terminal
// backgrounds, and the resolved dark mode must track the OS when the stored
// theme is "system". Detection is heuristic: terminals report their
// background unreliably, so we layer env overrides on top of COLORFGBG and
// (on macOS) the OS appearance.

// ApplyColorProfilePreference sets Lip Gloss's color profile.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which suits
// scriptable output but can accidentally strip colors from a TUI. Here we
// honor NO_COLOR and otherwise trust the terminal, upgrading when
// TERM/COLORTERM advertise more than the detector probed.
func ApplyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// SystemPrefersDark reports the OS-level dark-mode preference. This is the
// production appearance.SystemPreference source.
//
// Priority:
// 1) PREPDECK_THEME=light|dark (tests/CI override)
// 2) PREPDECK_DARKBG=true|false
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
// 4) macOS OS appearance
// 5) light
func SystemPrefersDark() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PREPDECK_THEME"))) {
	case "light":
		return false
	case "dark":
		return true
	}

	if v := strings.TrimSpace(os.Getenv("PREPDECK_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			return bg < 7
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			return dark
		}
	}
	return false
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and
	// exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}

// SyncTerminalBackground pushes the resolved dark/light decision into Lip
// Gloss so AdaptiveColor picks the matching variant everywhere.
func SyncTerminalBackground(isDark bool) {
	lipgloss.SetHasDarkBackground(isDark)
}

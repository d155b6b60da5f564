package appearance

import (
	"fmt"
	"os"
	"sync"
)

// Store abstracts the persistence adapter. The controller is the sole
// writer; everything else reads. Implementations live in internal/store.
type Store interface {
	// Load returns the persisted settings merged onto the defaults.
	// Missing or malformed data yields the defaults, never an error a
	// caller has to branch on.
	Load() (Settings, error)
	// Save writes through to every scope the implementation manages.
	// Durability is best effort; failures must not roll back other scopes.
	Save(Settings) error
}

// SystemPreference reports whether the OS currently prefers dark mode.
type SystemPreference func() bool

// Marker names written to the document root.
const (
	darkClass       = "dark"
	appearanceAttr  = "data-appearance"
	fontSizeAttr    = "data-font-size"
	memphisClass    = "memphis-style"
	minimalistClass = "minimalist-style"
)

func schemeClass(s Scheme) string { return "scheme-" + string(s) }

// Custom property names for the palette roles.
const (
	PropPrimary   = "--color-primary"
	PropSecondary = "--color-secondary"
	PropAccent    = "--color-accent"
	PropLight     = "--color-light"
	PropMedium    = "--color-medium"
	PropDark      = "--color-dark"
	PropContrast  = "--color-contrast"
	PropBadge     = "--color-badge"
)

const darkContrast = "#ffffff"

// Controller owns the current Settings and is the single apply entry point.
// Apply calls are serialized by a mutex: the Go stand-in for the original's
// single-UI-thread invariant, so observers never see a half-applied
// document.
type Controller struct {
	mu          sync.Mutex
	store       Store
	doc         *Document
	prefersDark SystemPreference
	bus         broadcaster

	current  Settings
	lastMark string
}

func NewController(store Store, doc *Document, prefersDark SystemPreference) *Controller {
	if doc == nil {
		doc = NewDocument()
	}
	if prefersDark == nil {
		prefersDark = func() bool { return false }
	}
	return &Controller{
		store:       store,
		doc:         doc,
		prefersDark: prefersDark,
		current:     Defaults(),
	}
}

func (c *Controller) Document() *Document { return c.doc }

// Load transitions Uninitialized -> Applied: it reads the persisted
// settings (defaults when nothing usable is stored) and applies them.
func (c *Controller) Load() Settings {
	s := Defaults()
	if c.store != nil {
		loaded, err := c.store.Load()
		if err != nil {
			diag("appearance: load failed, using defaults: %v", err)
		} else {
			s = loaded
		}
	}
	return c.Apply(s)
}

// Current returns the last applied settings (defaults before the first
// Load/Apply).
func (c *Controller) Current() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// IsDarkMode resolves the derived dark/light boolean for the current
// settings and the live OS preference.
func (c *Controller) IsDarkMode() bool {
	c.mu.Lock()
	s := c.current
	c.mu.Unlock()
	return s.ResolveDark(c.prefersDark())
}

// Subscribe registers an observer for applied settings. The returned cancel
// is idempotent.
func (c *Controller) Subscribe(fn func(Settings)) (cancel func()) {
	return c.bus.subscribe(fn)
}

// Apply persists s, mutates the document to match, and broadcasts the
// result. It is idempotent and never fails: persistence errors are logged
// and swallowed, unknown schemes fall back, absent style targets are
// no-ops. The (normalized) applied settings are returned for chaining.
func (c *Controller) Apply(s Settings) Settings {
	s = s.Normalize()

	c.mu.Lock()
	// 1. Persist (write-through, best effort).
	if c.store != nil {
		if err := c.store.Save(s); err != nil {
			diag("appearance: save failed, continuing in-memory: %v", err)
		}
	}

	// 2. Resolve effective dark/light.
	isDark := s.ResolveDark(c.prefersDark())

	// 3. Root dark marker + background overrides. Overrides are cleared in
	// both directions: dark/light only moves contrast and accent variables,
	// never paints over the animated backdrop.
	if isDark {
		c.doc.AddClass(darkClass)
		c.doc.SetAttr(appearanceAttr, "dark")
	} else {
		c.doc.RemoveClass(darkClass)
		c.doc.SetAttr(appearanceAttr, "light")
	}
	c.doc.Body().ClearBackground()
	for _, el := range c.doc.containerList() {
		el.ClearBackground()
	}

	// 4. Exactly one scheme marker class. Sweep the closed set plus
	// whatever was applied last (which may have been an unknown key).
	for _, known := range Schemes() {
		c.doc.RemoveClass(schemeClass(known))
	}
	if c.lastMark != "" {
		c.doc.RemoveClass(c.lastMark)
	}
	c.lastMark = schemeClass(s.ColorScheme)
	c.doc.AddClass(c.lastMark)

	// 5. Palette custom properties (total lookup, aquaBlue fallback).
	pal := PaletteFor(s.ColorScheme)
	c.doc.SetProp(PropPrimary, pal.Primary)
	c.doc.SetProp(PropSecondary, pal.Secondary)
	c.doc.SetProp(PropAccent, pal.Accent)
	c.doc.SetProp(PropLight, pal.Light)
	c.doc.SetProp(PropMedium, pal.Medium)
	c.doc.SetProp(PropDark, pal.Dark)
	c.doc.SetProp(PropContrast, pal.Contrast)
	c.doc.SetProp(PropBadge, pal.Badge)

	// 6. Dark-mode legibility overrides (not applied in light mode).
	if isDark {
		c.doc.SetProp(PropLight, pal.Dark)
		c.doc.SetProp(PropContrast, darkContrast)
	}

	// 7. Font size pass-through.
	c.doc.SetAttr(fontSizeAttr, string(s.FontSize))

	// 8. Mutually exclusive visual-style markers.
	if s.VisualStyle == StyleMinimalist {
		c.doc.RemoveClass(memphisClass)
		c.doc.AddClass(minimalistClass)
	} else {
		c.doc.RemoveClass(minimalistClass)
		c.doc.AddClass(memphisClass)
	}

	// 9. Commit styles before anyone can observe the change.
	c.doc.FlushStyle()

	c.current = s
	c.mu.Unlock()

	c.bus.emit(s)
	return s
}

func diag(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

package appearance

// Palette holds the color roles for one scheme. Values are hex strings so
// they can be written straight into document custom properties and fed to
// lipgloss.Color by the TUI.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	Light     string
	Medium    string
	Dark      string
	Contrast  string
	Badge     string
}

var palettes = map[Scheme]Palette{
	SchemeAquaBlue: {
		Primary:   "#0ea5e9",
		Secondary: "#38bdf8",
		Accent:    "#06b6d4",
		Light:     "#e0f2fe",
		Medium:    "#7dd3fc",
		Dark:      "#0c4a6e",
		Contrast:  "#082f49",
		Badge:     "#0284c7",
	},
	SchemeCoralPink: {
		Primary:   "#f43f5e",
		Secondary: "#fb7185",
		Accent:    "#f97316",
		Light:     "#ffe4e6",
		Medium:    "#fda4af",
		Dark:      "#881337",
		Contrast:  "#4c0519",
		Badge:     "#e11d48",
	},
	SchemeMintGreen: {
		Primary:   "#10b981",
		Secondary: "#34d399",
		Accent:    "#14b8a6",
		Light:     "#d1fae5",
		Medium:    "#6ee7b7",
		Dark:      "#064e3b",
		Contrast:  "#022c22",
		Badge:     "#059669",
	},
	SchemeRoyalPurple: {
		Primary:   "#8b5cf6",
		Secondary: "#a78bfa",
		Accent:    "#d946ef",
		Light:     "#ede9fe",
		Medium:    "#c4b5fd",
		Dark:      "#4c1d95",
		Contrast:  "#2e1065",
		Badge:     "#7c3aed",
	},
	SchemeBusiness: {
		Primary:   "#f59e0b",
		Secondary: "#fbbf24",
		Accent:    "#d97706",
		Light:     "#fef3c7",
		Medium:    "#fcd34d",
		Dark:      "#78350f",
		Contrast:  "#451a03",
		Badge:     "#b45309",
	},
	SchemeFinance: {
		Primary:   "#22c55e",
		Secondary: "#4ade80",
		Accent:    "#84cc16",
		Light:     "#dcfce7",
		Medium:    "#86efac",
		Dark:      "#14532d",
		Contrast:  "#052e16",
		Badge:     "#16a34a",
	},
	SchemeHospitality: {
		Primary:   "#3b82f6",
		Secondary: "#60a5fa",
		Accent:    "#6366f1",
		Light:     "#dbeafe",
		Medium:    "#93c5fd",
		Dark:      "#1e3a8a",
		Contrast:  "#172554",
		Badge:     "#2563eb",
	},
	SchemeMarketing: {
		Primary:   "#ef4444",
		Secondary: "#f87171",
		Accent:    "#f59e0b",
		Light:     "#fee2e2",
		Medium:    "#fca5a5",
		Dark:      "#7f1d1d",
		Contrast:  "#450a0a",
		Badge:     "#dc2626",
	},
	SchemeEntrepreneurship: {
		Primary:   "#6b7280",
		Secondary: "#9ca3af",
		Accent:    "#64748b",
		Light:     "#f3f4f6",
		Medium:    "#d1d5db",
		Dark:      "#1f2937",
		Contrast:  "#111827",
		Badge:     "#4b5563",
	},
	SchemeAdmin: {
		Primary:   "#0d9488",
		Secondary: "#2dd4bf",
		Accent:    "#0891b2",
		Light:     "#ccfbf1",
		Medium:    "#5eead4",
		Dark:      "#134e4a",
		Contrast:  "#042f2e",
		Badge:     "#0f766e",
	},
}

// Schemes returns the closed scheme set in a stable order (for pickers and
// marker-class removal).
func Schemes() []Scheme {
	return []Scheme{
		SchemeAquaBlue,
		SchemeCoralPink,
		SchemeMintGreen,
		SchemeRoyalPurple,
		SchemeBusiness,
		SchemeFinance,
		SchemeHospitality,
		SchemeMarketing,
		SchemeEntrepreneurship,
		SchemeAdmin,
	}
}

// PaletteFor resolves a scheme to its palette. The lookup is total: unknown
// keys resolve to the aquaBlue palette rather than erroring, so a stale or
// foreign persisted key can never break rendering.
func PaletteFor(s Scheme) Palette {
	if p, ok := palettes[s]; ok {
		return p
	}
	return palettes[SchemeAquaBlue]
}

// KnownScheme reports whether s is in the closed palette table.
func KnownScheme(s Scheme) bool {
	_, ok := palettes[s]
	return ok
}

package appearance

import (
	"encoding/json"
	"strings"
)

// Settings is the tuple that fully determines visual presentation.
//
// All fields always hold a defined value: anything loaded from disk goes
// through Normalize/MergeRecord, so downstream code never has to re-check.
type Settings struct {
	Theme       Theme       `json:"theme"`
	ColorScheme Scheme      `json:"colorScheme"`
	FontSize    FontSize    `json:"fontSize"`
	VisualStyle VisualStyle `json:"visualStyle"`
}

// Theme selects the display mode. ThemeSystem defers to the OS preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Scheme names a palette in the closed palette table. It stays a typed
// string (rather than an int enum) because it travels through JSON and
// unknown keys must degrade to the default palette, not fail.
type Scheme string

const (
	SchemeAquaBlue         Scheme = "aquaBlue"
	SchemeCoralPink        Scheme = "coralPink"
	SchemeMintGreen        Scheme = "mintGreen"
	SchemeRoyalPurple      Scheme = "royalPurple"
	SchemeBusiness         Scheme = "business"
	SchemeFinance          Scheme = "finance"
	SchemeHospitality      Scheme = "hospitality"
	SchemeMarketing        Scheme = "marketing"
	SchemeEntrepreneurship Scheme = "entrepreneurship"
	SchemeAdmin            Scheme = "admin"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// VisualStyle toggles decorative vs clean presentation, independent of
// color scheme and dark mode.
type VisualStyle string

const (
	StyleMemphis    VisualStyle = "memphis"
	StyleMinimalist VisualStyle = "minimalist"
)

func Defaults() Settings {
	return Settings{
		Theme:       ThemeLight,
		ColorScheme: SchemeAquaBlue,
		FontSize:    FontMedium,
		VisualStyle: StyleMemphis,
	}
}

func (t Theme) valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

func (f FontSize) valid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

func (v VisualStyle) valid() bool {
	switch v {
	case StyleMemphis, StyleMinimalist:
		return true
	}
	return false
}

// Normalize substitutes the default for each field that is empty or outside
// its closed set. ColorScheme is the exception: any non-empty key is kept as
// typed, because palette lookup is total (unknown keys render as aquaBlue)
// and future keys in persisted data must survive a round trip.
func (s Settings) Normalize() Settings {
	def := Defaults()
	if !s.Theme.valid() {
		s.Theme = def.Theme
	}
	s.ColorScheme = Scheme(strings.TrimSpace(string(s.ColorScheme)))
	if s.ColorScheme == "" {
		s.ColorScheme = def.ColorScheme
	}
	if !s.FontSize.valid() {
		s.FontSize = def.FontSize
	}
	if !s.VisualStyle.valid() {
		s.VisualStyle = def.VisualStyle
	}
	return s
}

// ResolveDark reports whether dark mode is active for these settings given
// the OS preference. The resolved value is derived, never stored.
func (s Settings) ResolveDark(systemPrefersDark bool) bool {
	return s.Theme == ThemeDark || (s.Theme == ThemeSystem && systemPrefersDark)
}

const recordVersion = 1

// record is the persisted JSON shape. Unknown extra fields are ignored on
// read and therefore dropped on the next write; missing fields merge onto
// the base value field-by-field.
type record struct {
	Version     int    `json:"version"`
	Theme       string `json:"theme,omitempty"`
	ColorScheme string `json:"colorScheme,omitempty"`
	FontSize    string `json:"fontSize,omitempty"`
	VisualStyle string `json:"visualStyle,omitempty"`

	// v0 field names, accepted on read only.
	LegacyMode   string `json:"mode,omitempty"`
	LegacyScheme string `json:"scheme,omitempty"`
}

// EncodeRecord serializes settings for persistence.
func EncodeRecord(s Settings) ([]byte, error) {
	s = s.Normalize()
	return json.MarshalIndent(record{
		Version:     recordVersion,
		Theme:       string(s.Theme),
		ColorScheme: string(s.ColorScheme),
		FontSize:    string(s.FontSize),
		VisualStyle: string(s.VisualStyle),
	}, "", "  ")
}

// MergeRecord decodes a persisted record and merges it onto base,
// field-by-field: fields present in the record win, missing or invalid
// fields keep the base value. Malformed JSON leaves base untouched and
// reports ok=false; callers treat that as "record absent".
func MergeRecord(base Settings, b []byte) (merged Settings, ok bool) {
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return base, false
	}
	if rec.Version == 0 {
		migrateRecordV0(&rec)
	}
	if t := Theme(strings.TrimSpace(rec.Theme)); t.valid() {
		base.Theme = t
	}
	if c := strings.TrimSpace(rec.ColorScheme); c != "" {
		base.ColorScheme = Scheme(c)
	}
	if f := FontSize(strings.TrimSpace(rec.FontSize)); f.valid() {
		base.FontSize = f
	}
	if v := VisualStyle(strings.TrimSpace(rec.VisualStyle)); v.valid() {
		base.VisualStyle = v
	}
	return base, true
}

// migrateRecordV0 lifts pre-versioning records into the v1 field names.
// v0 wrote {"mode": ..., "scheme": ...} and had no font size or visual
// style.
func migrateRecordV0(rec *record) {
	if rec.Theme == "" && rec.LegacyMode != "" {
		rec.Theme = rec.LegacyMode
	}
	if rec.ColorScheme == "" && rec.LegacyScheme != "" {
		rec.ColorScheme = rec.LegacyScheme
	}
}

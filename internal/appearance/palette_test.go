package appearance

import "testing"

func TestPaletteFor_UnknownFallsBackToAquaBlue(t *testing.T) {
	t.Parallel()

	if got, want := PaletteFor("doesNotExist"), PaletteFor(SchemeAquaBlue); got != want {
		t.Fatalf("unknown scheme palette = %+v, want aquaBlue %+v", got, want)
	}
}

func TestPalettes_ClosedSetIsComplete(t *testing.T) {
	t.Parallel()

	for _, s := range Schemes() {
		if !KnownScheme(s) {
			t.Errorf("scheme %q listed but not in palette table", s)
		}
		p := PaletteFor(s)
		for role, v := range map[string]string{
			"primary": p.Primary, "secondary": p.Secondary, "accent": p.Accent,
			"light": p.Light, "medium": p.Medium, "dark": p.Dark,
			"contrast": p.Contrast, "badge": p.Badge,
		} {
			if len(v) != 7 || v[0] != '#' {
				t.Errorf("scheme %q role %s: %q is not a hex color", s, role, v)
			}
		}
	}
	if len(Schemes()) != len(palettes) {
		t.Fatalf("Schemes() lists %d entries, palette table has %d", len(Schemes()), len(palettes))
	}
}

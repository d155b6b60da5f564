package store

import (
	"os"
	"path/filepath"
	"testing"

	"prepdeck/internal/appearance"
)

// isolate points both scopes at per-test directories. TMPDIR steers
// os.TempDir, which the session scope builds on.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("PREPDECK_CONFIG_DIR", t.TempDir())
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("PREPDECK_SESSION", "test")
	t.Setenv("PREPDECK_STATE_BACKEND", "")
}

func TestAdapter_SaveLoadRoundTrip(t *testing.T) {
	isolate(t)
	a := NewAdapter()

	want := appearance.Settings{
		Theme:       appearance.ThemeSystem,
		ColorScheme: appearance.SchemeCoralPink,
		FontSize:    appearance.FontLarge,
		VisualStyle: appearance.StyleMinimalist,
	}
	if err := a.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := a.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("roundtrip mismatch:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestAdapter_EmptyScopesYieldDefaults(t *testing.T) {
	isolate(t)
	got, err := NewAdapter().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != appearance.Defaults() {
		t.Fatalf("empty scopes: got %+v, want defaults", got)
	}
}

func TestAdapter_SessionScopeWinsOverDevice(t *testing.T) {
	isolate(t)

	deviceRec, err := appearance.EncodeRecord(appearance.Settings{
		Theme:       appearance.ThemeDark,
		ColorScheme: appearance.SchemeFinance,
		FontSize:    appearance.FontSmall,
		VisualStyle: appearance.StyleMemphis,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := (deviceJSONScope{}).Write(deviceRec); err != nil {
		t.Fatalf("write device scope: %v", err)
	}
	// Session diverges on scheme only; other fields should come from the
	// device record, not the defaults.
	if err := (sessionScope{}).Write([]byte(`{"version":1,"colorScheme":"royalPurple"}`)); err != nil {
		t.Fatalf("write session scope: %v", err)
	}

	got, err := NewAdapter().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := appearance.Settings{
		Theme:       appearance.ThemeDark,
		ColorScheme: appearance.SchemeRoyalPurple,
		FontSize:    appearance.FontSmall,
		VisualStyle: appearance.StyleMemphis,
	}
	if got != want {
		t.Fatalf("layered load:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestAdapter_MalformedSessionFallsThroughToDevice(t *testing.T) {
	isolate(t)

	deviceRec, _ := appearance.EncodeRecord(appearance.Settings{
		Theme:       appearance.ThemeLight,
		ColorScheme: appearance.SchemeAdmin,
		FontSize:    appearance.FontMedium,
		VisualStyle: appearance.StyleMemphis,
	})
	if err := (deviceJSONScope{}).Write(deviceRec); err != nil {
		t.Fatalf("write device scope: %v", err)
	}
	if err := (sessionScope{}).Write([]byte("{corrupt")); err != nil {
		t.Fatalf("write session scope: %v", err)
	}

	got, err := NewAdapter().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ColorScheme != appearance.SchemeAdmin {
		t.Fatalf("malformed session must not mask device record; got %+v", got)
	}
}

func TestAdapter_ResetRestoresDefaults(t *testing.T) {
	isolate(t)
	a := NewAdapter()

	s := appearance.Defaults()
	s.ColorScheme = appearance.SchemeMarketing
	if err := a.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err := a.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != appearance.Defaults() {
		t.Fatalf("after reset: got %+v, want defaults", got)
	}
}

func TestAdapter_SaveWritesBothScopes(t *testing.T) {
	isolate(t)
	a := NewAdapter()

	s := appearance.Defaults()
	s.FontSize = appearance.FontLarge
	if err := a.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	devicePath, err := appearancePath()
	if err != nil {
		t.Fatalf("appearancePath: %v", err)
	}
	for _, path := range []string{devicePath, sessionPath()} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("scope file missing after write-through save: %s (%v)", filepath.Base(path), err)
		}
	}
}

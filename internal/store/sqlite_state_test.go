package store

import (
	"os"
	"path/filepath"
	"testing"

	"prepdeck/internal/appearance"
)

func TestDetectDeviceBackend(t *testing.T) {
	t.Run("default is json", func(t *testing.T) {
		isolate(t)
		if got := DetectDeviceBackend(); got != DeviceBackendJSON {
			t.Fatalf("backend = %q, want json", got)
		}
	})

	t.Run("env override wins", func(t *testing.T) {
		isolate(t)
		t.Setenv("PREPDECK_STATE_BACKEND", "sqlite")
		if got := DetectDeviceBackend(); got != DeviceBackendSQLite {
			t.Fatalf("backend = %q, want sqlite", got)
		}
	})

	t.Run("existing state db is detected", func(t *testing.T) {
		isolate(t)
		dir := os.Getenv("PREPDECK_CONFIG_DIR")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, stateDBFileName), []byte{}, 0o644); err != nil {
			t.Fatalf("touch state db: %v", err)
		}
		if got := DetectDeviceBackend(); got != DeviceBackendSQLite {
			t.Fatalf("backend = %q, want sqlite", got)
		}
	})
}

func TestDeviceSQLiteScope_RoundTrip(t *testing.T) {
	isolate(t)
	sc := deviceSQLiteScope{}

	if _, ok, err := sc.Read(); err != nil || ok {
		t.Fatalf("fresh db read: ok=%v err=%v, want absent", ok, err)
	}

	rec, err := appearance.EncodeRecord(appearance.Settings{
		Theme:       appearance.ThemeDark,
		ColorScheme: appearance.SchemeHospitality,
		FontSize:    appearance.FontSmall,
		VisualStyle: appearance.StyleMinimalist,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := sc.Write(rec); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, ok, err := sc.Read()
	if err != nil || !ok {
		t.Fatalf("Read after write: ok=%v err=%v", ok, err)
	}
	merged, ok := appearance.MergeRecord(appearance.Defaults(), got)
	if !ok || merged.ColorScheme != appearance.SchemeHospitality {
		t.Fatalf("sqlite roundtrip: ok=%v merged=%+v", ok, merged)
	}

	// Overwrite replaces, not appends.
	if err := sc.Write([]byte(`{"version":1,"theme":"light"}`)); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	got, ok, err = sc.Read()
	if err != nil || !ok {
		t.Fatalf("Read after overwrite: ok=%v err=%v", ok, err)
	}
	merged, _ = appearance.MergeRecord(appearance.Defaults(), got)
	if merged.Theme != appearance.ThemeLight {
		t.Fatalf("overwrite not applied: %+v", merged)
	}
}

func TestAdapter_SQLiteBackendRoundTrip(t *testing.T) {
	isolate(t)
	t.Setenv("PREPDECK_STATE_BACKEND", "sqlite")

	a := NewAdapter()
	want := appearance.Settings{
		Theme:       appearance.ThemeSystem,
		ColorScheme: appearance.SchemeEntrepreneurship,
		FontSize:    appearance.FontMedium,
		VisualStyle: appearance.StyleMemphis,
	}
	if err := a.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := a.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("sqlite-backed roundtrip:\nwant: %+v\ngot:  %+v", want, got)
	}
}

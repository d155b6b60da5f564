package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const appearanceFileName = "appearance.json"

// ConfigDir resolves the device-scoped config directory.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.prepdeck).
	if v := strings.TrimSpace(os.Getenv("PREPDECK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".prepdeck"), nil
}

func appearancePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appearanceFileName), nil
}

// atomicWriteFile writes through a unique temp file + rename so concurrent
// writers (CLI + TUI) can't leave a torn record behind.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// readFileIfPresent returns ok=false (and no error) for a missing file, so
// absent and empty scopes look the same to the adapter.
func readFileIfPresent(path string) ([]byte, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(b) == 0 {
		return nil, false, nil
	}
	return b, true, nil
}

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scope is one storage tier for the serialized appearance record.
// Read reports ok=false for an absent/empty scope; a scope that cannot be
// resolved at all (e.g. no home dir) surfaces an error, which the adapter
// downgrades to a diagnostic.
type Scope interface {
	Name() string
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
}

// deviceJSONScope stores the record as a JSON file in the config dir.
// It survives across sessions on this device/profile.
type deviceJSONScope struct{}

func (deviceJSONScope) Name() string { return "device" }

func (deviceJSONScope) Read() ([]byte, bool, error) {
	path, err := appearancePath()
	if err != nil {
		return nil, false, err
	}
	return readFileIfPresent(path)
}

func (deviceJSONScope) Write(b []byte) error {
	path, err := appearancePath()
	if err != nil {
		return err
	}
	return atomicWriteFile(filepath.Dir(path), appearanceFileName+".*.tmp", path, b, 0o600)
}

// sessionScope stores the record under the session runtime dir, so one
// session's override can diverge without touching the shared device
// default. The directory lives under the OS temp dir and goes away with it.
type sessionScope struct{}

func (sessionScope) Name() string { return "session" }

// SessionID identifies the current session. PREPDECK_SESSION lets a shell
// (or a test) pin it; otherwise the parent process id is a good enough
// per-terminal key.
func SessionID() string {
	if v := strings.TrimSpace(os.Getenv("PREPDECK_SESSION")); v != "" {
		return v
	}
	return fmt.Sprintf("pid-%d", os.Getppid())
}

func sessionPath() string {
	return filepath.Join(os.TempDir(), "prepdeck", "session-"+SessionID(), appearanceFileName)
}

func (sessionScope) Read() ([]byte, bool, error) {
	return readFileIfPresent(sessionPath())
}

func (sessionScope) Write(b []byte) error {
	path := sessionPath()
	return atomicWriteFile(filepath.Dir(path), appearanceFileName+".*.tmp", path, b, 0o600)
}

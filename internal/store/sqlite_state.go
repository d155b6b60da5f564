package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Device backend selection. JSON is the default; the SQLite state db is used
// when explicitly selected or when one already exists on disk (so a device
// that migrated once keeps using it).
type DeviceBackend string

const (
	DeviceBackendJSON   DeviceBackend = "json"
	DeviceBackendSQLite DeviceBackend = "sqlite"

	envStateBackend = "PREPDECK_STATE_BACKEND"
	stateDBFileName = "state.sqlite"
)

func statePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateDBFileName), nil
}

// DetectDeviceBackend picks the device-scope backend: env override first,
// then presence of an existing state db, then JSON.
func DetectDeviceBackend() DeviceBackend {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envStateBackend))) {
	case string(DeviceBackendSQLite):
		return DeviceBackendSQLite
	case string(DeviceBackendJSON):
		return DeviceBackendJSON
	}
	if path, err := statePath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			return DeviceBackendSQLite
		}
	}
	return DeviceBackendJSON
}

// deviceSQLiteScope stores the record in a small k/v table inside the
// device state db.
type deviceSQLiteScope struct{}

func (deviceSQLiteScope) Name() string { return "device" }

const appearanceMetaKey = "appearance"

func openStateDB(ctx context.Context) (*sql.DB, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS appearance_meta (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func stateCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (deviceSQLiteScope) Read() ([]byte, bool, error) {
	ctx, cancel := stateCtx()
	defer cancel()
	db, err := openStateDB(ctx)
	if err != nil {
		return nil, false, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM appearance_meta WHERE k = ?`, appearanceMetaKey).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(v) == "" {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (deviceSQLiteScope) Write(b []byte) error {
	ctx, cancel := stateCtx()
	defer cancel()
	db, err := openStateDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO appearance_meta(k, v) VALUES(?, ?)`,
		appearanceMetaKey, string(b))
	return err
}

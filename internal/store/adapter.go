package store

import (
	"fmt"
	"os"

	"prepdeck/internal/appearance"
)

// Adapter is the layered persistence adapter for appearance settings.
// Load merges device then session onto the defaults (session wins, so a
// session override takes priority over the shared device default); Save
// writes through to both scopes unconditionally. There is no
// transactionality between scopes: either write may fail independently
// without rolling back the other.
type Adapter struct {
	session Scope
	device  Scope
	journal bool
}

var _ appearance.Store = (*Adapter)(nil)

// NewAdapter builds the production adapter: session scope under the runtime
// dir plus a device scope on the autodetected backend, with the change
// journal enabled.
func NewAdapter() *Adapter {
	var device Scope = deviceJSONScope{}
	if DetectDeviceBackend() == DeviceBackendSQLite {
		device = deviceSQLiteScope{}
	}
	return &Adapter{session: sessionScope{}, device: device, journal: true}
}

// NewAdapterWithScopes wires explicit scopes; used by tests and by callers
// that want device-only behavior (pass a nil session).
func NewAdapterWithScopes(session, device Scope) *Adapter {
	return &Adapter{session: session, device: device}
}

// Load reads session first, then device, merging each present record onto
// the defaults field-by-field. Malformed or unreadable data is logged and
// treated as absent; Load never returns anything but usable settings.
func (a *Adapter) Load() (appearance.Settings, error) {
	s := appearance.Defaults()
	// Merge device first so the session record wins field-by-field.
	s = a.mergeScope(a.device, s)
	s = a.mergeScope(a.session, s)
	return s, nil
}

func (a *Adapter) mergeScope(sc Scope, base appearance.Settings) appearance.Settings {
	if sc == nil {
		return base
	}
	b, ok, err := sc.Read()
	if err != nil {
		diag("appearance store: read %s scope: %v", sc.Name(), err)
		return base
	}
	if !ok {
		return base
	}
	merged, ok := appearance.MergeRecord(base, b)
	if !ok {
		diag("appearance store: %s scope record is malformed; ignoring it", sc.Name())
		return base
	}
	return merged
}

// Save serializes s and writes through to both scopes. Each write is best
// effort; the first failure is reported (for the caller's diagnostics) but
// does not stop the other scope or the journal append.
func (a *Adapter) Save(s appearance.Settings) error {
	b, err := appearance.EncodeRecord(s)
	if err != nil {
		return err
	}
	var firstErr error
	for _, sc := range []Scope{a.session, a.device} {
		if sc == nil {
			continue
		}
		if err := sc.Write(b); err != nil {
			diag("appearance store: write %s scope: %v", sc.Name(), err)
			if firstErr == nil {
				firstErr = fmt.Errorf("write %s scope: %w", sc.Name(), err)
			}
		}
	}
	if a.journal {
		if err := appendJournal(s); err != nil {
			diag("appearance store: journal append: %v", err)
		}
	}
	return firstErr
}

// Reset removes the record from both scopes so the next Load yields the
// defaults. Missing files are fine.
func (a *Adapter) Reset() error {
	var firstErr error
	if path, err := appearancePath(); err == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			firstErr = err
		}
	}
	if err := os.Remove(sessionPath()); err != nil && !os.IsNotExist(err) && firstErr == nil {
		firstErr = err
	}
	if DetectDeviceBackend() == DeviceBackendSQLite {
		if err := (deviceSQLiteScope{}).Write([]byte("")); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func diag(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

package store

// Health is a snapshot of the persistence layer for `prepdeck doctor`.
// Collecting it must never fail: unknown pieces are reported as absent.
type Health struct {
	ConfigDir      string `json:"configDir"`
	DeviceBackend  string `json:"deviceBackend"`
	SessionID      string `json:"sessionId"`
	DeviceRecord   bool   `json:"deviceRecord"`
	SessionRecord  bool   `json:"sessionRecord"`
	JournalEntries int    `json:"journalEntries"`
}

func CollectHealth() Health {
	h := Health{
		DeviceBackend: string(DetectDeviceBackend()),
		SessionID:     SessionID(),
	}
	if dir, err := ConfigDir(); err == nil {
		h.ConfigDir = dir
	}

	var device Scope = deviceJSONScope{}
	if h.DeviceBackend == string(DeviceBackendSQLite) {
		device = deviceSQLiteScope{}
	}
	if _, ok, err := device.Read(); err == nil {
		h.DeviceRecord = ok
	}
	if _, ok, err := (sessionScope{}).Read(); err == nil {
		h.SessionRecord = ok
	}
	if entries, err := ReadJournal(); err == nil {
		h.JournalEntries = len(entries)
	}
	return h
}

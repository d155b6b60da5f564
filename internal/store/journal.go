package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"prepdeck/internal/appearance"
)

const journalFileName = "appearance_log.jsonl"

// JournalEntry is one appearance change, appended per successful save.
// The journal is diagnostic-only (surfaced by `prepdeck doctor`); append
// failures never block a save.
type JournalEntry struct {
	At          string `json:"at"`
	Theme       string `json:"theme"`
	ColorScheme string `json:"colorScheme"`
	FontSize    string `json:"fontSize"`
	VisualStyle string `json:"visualStyle"`
}

func journalPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, journalFileName), nil
}

func appendJournal(s appearance.Settings) error {
	path, err := journalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(JournalEntry{
		At:          time.Now().UTC().Format(time.RFC3339),
		Theme:       string(s.Theme),
		ColorScheme: string(s.ColorScheme),
		FontSize:    string(s.FontSize),
		VisualStyle: string(s.VisualStyle),
	})
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return f.Sync()
}

// ReadJournal returns all journal entries, oldest first. Unparsable lines
// are skipped: the journal must never make diagnostics worse than the
// problem it reports on.
func ReadJournal() ([]JournalEntry, error) {
	path, err := journalPath()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []JournalEntry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []JournalEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e JournalEntry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []JournalEntry{}
	}
	return out, nil
}

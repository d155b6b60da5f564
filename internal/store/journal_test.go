package store

import (
	"os"
	"testing"

	"prepdeck/internal/appearance"
)

func TestJournal_AppendAndRead(t *testing.T) {
	isolate(t)

	if entries, err := ReadJournal(); err != nil || len(entries) != 0 {
		t.Fatalf("fresh journal: entries=%v err=%v", entries, err)
	}

	s := appearance.Defaults()
	if err := appendJournal(s); err != nil {
		t.Fatalf("appendJournal: %v", err)
	}
	s.ColorScheme = appearance.SchemeCoralPink
	if err := appendJournal(s); err != nil {
		t.Fatalf("appendJournal: %v", err)
	}

	entries, err := ReadJournal()
	if err != nil {
		t.Fatalf("ReadJournal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ColorScheme != "aquaBlue" || entries[1].ColorScheme != "coralPink" {
		t.Fatalf("entries out of order: %+v", entries)
	}
	if entries[1].At == "" {
		t.Fatalf("entry missing timestamp: %+v", entries[1])
	}
}

func TestJournal_SkipsUnparsableLines(t *testing.T) {
	isolate(t)

	if err := appendJournal(appearance.Defaults()); err != nil {
		t.Fatalf("appendJournal: %v", err)
	}
	path, err := journalPath()
	if err != nil {
		t.Fatalf("journalPath: %v", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	if _, err := f.WriteString("{torn write\n"); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	_ = f.Close()
	if err := appendJournal(appearance.Defaults()); err != nil {
		t.Fatalf("appendJournal: %v", err)
	}

	entries, err := ReadJournal()
	if err != nil {
		t.Fatalf("ReadJournal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (garbage line skipped)", len(entries))
	}
}

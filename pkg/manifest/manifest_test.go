package manifest

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewStampsBuildID(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := New("wordlist.txt", now)

	if m.BuildID == "" {
		t.Fatal("expected a non-empty build ID")
	}
	if m.SourcePath != "wordlist.txt" {
		t.Errorf("SourcePath = %q, want wordlist.txt", m.SourcePath)
	}
	if !m.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", m.CreatedAt, now)
	}
}

func TestSummaryFormatting(t *testing.T) {
	m := &Manifest{WordsRead: 1234567, WordsAccepted: 1000000, WordsRejected: 234567, Duplicates: 42}
	got := m.Summary()
	want := "1,234,567 words read, 1,000,000 accepted, 234,567 rejected, 42 duplicates"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := New("wordlist.txt", now)
	m.WordsRead = 10
	m.WordsAccepted = 8
	m.WordsRejected = 2
	m.Duplicates = 1
	m.TriePath = "index.trie"
	m.BKTreePath = "index.bk"
	m.ShuffleSeed = 42

	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.BuildID != m.BuildID {
		t.Errorf("BuildID = %q, want %q", loaded.BuildID, m.BuildID)
	}
	if loaded.WordsAccepted != m.WordsAccepted {
		t.Errorf("WordsAccepted = %d, want %d", loaded.WordsAccepted, m.WordsAccepted)
	}
	if loaded.ShuffleSeed != m.ShuffleSeed {
		t.Errorf("ShuffleSeed = %d, want %d", loaded.ShuffleSeed, m.ShuffleSeed)
	}
}

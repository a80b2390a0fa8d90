// Package manifest records provenance for a completed index build: what
// was built, from which wordlist, how many words survived filtering, and
// under what build-time settings, so a Trie/BK-Tree pair on disk can be
// traced back to the run that produced it.
package manifest

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// Manifest describes a single build run.
type Manifest struct {
	BuildID       string    `yaml:"build_id"`
	CreatedAt     time.Time `yaml:"created_at"`
	SourcePath    string    `yaml:"source_path"`
	WordsRead     int       `yaml:"words_read"`
	WordsAccepted int       `yaml:"words_accepted"`
	WordsRejected int       `yaml:"words_rejected"`
	Duplicates    int       `yaml:"duplicates"`
	TriePath      string    `yaml:"trie_path,omitempty"`
	BKTreePath    string    `yaml:"bktree_path,omitempty"`
	ShuffleSeed   int64     `yaml:"shuffle_seed,omitempty"`
}

// New returns a Manifest stamped with a fresh ULID build ID and the given
// creation time. now is a parameter rather than time.Now() so callers with
// deterministic tests can supply a fixed instant.
func New(sourcePath string, now time.Time) *Manifest {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(now), entropy)
	return &Manifest{
		BuildID:    id.String(),
		CreatedAt:  now,
		SourcePath: sourcePath,
	}
}

// Summary renders a human-readable one-line summary of the word counts
// using humanized numbers, suitable for a log line at the end of a build.
func (m *Manifest) Summary() string {
	return fmt.Sprintf(
		"%s words read, %s accepted, %s rejected, %s duplicates",
		humanize.Comma(int64(m.WordsRead)),
		humanize.Comma(int64(m.WordsAccepted)),
		humanize.Comma(int64(m.WordsRejected)),
		humanize.Comma(int64(m.Duplicates)),
	)
}

// Save writes m as YAML to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// Load reads a Manifest previously written by Save.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest %s: %w", path, err)
	}
	return &m, nil
}

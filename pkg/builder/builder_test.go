package builder

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovacs/lexiprep/pkg/bktree"
	"github.com/mkovacs/lexiprep/pkg/trie"
)

func writeWordlist(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadWordlistNormalisesAndFilters(t *testing.T) {
	path := writeWordlist(t, "Cat", "DOG", "co2", "", "cat", "bird\r")

	b := New(1)
	require.NoError(t, b.ReadWordlist(path))

	assert.Equal(t, 6, b.WordsRead())
	assert.Equal(t, 3, b.Accepted()) // cat, dog, bird
	assert.Equal(t, 2, b.Rejected()) // co2, empty line
	assert.Equal(t, 1, b.Duplicates())
}

func TestBuildTrieRoundTrip(t *testing.T) {
	path := writeWordlist(t, "cat", "car", "dog")
	b := New(1)
	require.NoError(t, b.ReadWordlist(path))

	outPath := filepath.Join(t.TempDir(), "index.trie")
	require.NoError(t, b.BuildTrie(outPath))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	tr, err := trie.Decode(f)
	require.NoError(t, err)

	for _, w := range []string{"cat", "car", "dog"} {
		assert.True(t, tr.Search(w), "expected %q to be present", w)
	}
	assert.False(t, tr.Search("bird"))
}

func TestBuildBKTreeRoundTrip(t *testing.T) {
	path := writeWordlist(t, "book", "books", "boo", "cook")
	b := New(42)
	require.NoError(t, b.ReadWordlist(path))

	outPath := filepath.Join(t.TempDir(), "index.bk")
	require.NoError(t, b.BuildBKTree(outPath))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	tree, err := bktree.Decode(f)
	require.NoError(t, err)

	got := tree.Find("book", 1)
	sort.Strings(got)
	assert.Equal(t, []string{"boo", "book", "books", "cook"}, got)
}

func TestBuildBKTreeDeterministicWithoutSeed(t *testing.T) {
	path := writeWordlist(t, "cat", "car", "cab", "cap", "dog")

	b1 := New(0)
	require.NoError(t, b1.ReadWordlist(path))
	out1 := filepath.Join(t.TempDir(), "one.bk")
	require.NoError(t, b1.BuildBKTree(out1))

	b2 := New(0)
	require.NoError(t, b2.ReadWordlist(path))
	out2 := filepath.Join(t.TempDir(), "two.bk")
	require.NoError(t, b2.BuildBKTree(out2))

	bytes1, err := os.ReadFile(out1)
	require.NoError(t, err)
	bytes2, err := os.ReadFile(out2)
	require.NoError(t, err)

	assert.Equal(t, bytes1, bytes2, "same input with seed 0 should derive the same shuffle seed")
}

func TestCollectContext(t *testing.T) {
	path := writeWordlist(t, "the quick fox", "the lazy fox")
	b := New(1)
	require.NoError(t, b.ReadWordlist(path))

	analyzer, err := b.CollectContext(path)
	require.NoError(t, err)

	require.True(t, analyzer.HasWord("fox"))
	assert.Equal(t, uint64(1), analyzer.BeforeWordCount("fox", "quick"))
	assert.Equal(t, uint64(1), analyzer.BeforeWordCount("fox", "lazy"))
}

func TestManifestRecordsCounts(t *testing.T) {
	path := writeWordlist(t, "cat", "cat", "co2")
	b := New(1)
	require.NoError(t, b.ReadWordlist(path))

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := b.Manifest(now)

	assert.Equal(t, 3, m.WordsRead)
	assert.Equal(t, 1, m.WordsAccepted)
	assert.Equal(t, 1, m.WordsRejected)
	assert.Equal(t, 1, m.Duplicates)
	assert.NotEmpty(t, m.BuildID)
}

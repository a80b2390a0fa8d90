package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mkovacs/lexiprep/pkg/bktree"
	"github.com/mkovacs/lexiprep/pkg/trie"
)

func buildLookupTrie() *trie.Trie {
	tr := trie.New()
	for _, w := range []string{"cat", "car", "cab", "cap", "dog"} {
		tr.Insert(w)
	}
	return tr
}

func buildLookupBKTree() *bktree.Tree {
	tree := bktree.New()
	for _, w := range []string{"book", "books", "boo", "boon", "cook"} {
		tree.Insert(w)
	}
	return tree
}

func runLookup(t *testing.T, tr *trie.Trie, bk *bktree.Tree, commands string) string {
	t.Helper()
	var out bytes.Buffer
	h := NewLookupHandler(tr, bk, 2, 0, strings.NewReader(commands), &out)
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return out.String()
}

func TestLookupSearchAndStarts(t *testing.T) {
	out := runLookup(t, buildLookupTrie(), nil, "search cat\nsearch caterpillar\nstarts ca\nquit\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[len(lines)-3] != "true" {
		t.Errorf("search cat = %q, want true", lines[len(lines)-3])
	}
	if lines[len(lines)-2] != "false" {
		t.Errorf("search caterpillar = %q, want false", lines[len(lines)-2])
	}
	if lines[len(lines)-1] != "true" {
		t.Errorf("starts ca = %q, want true", lines[len(lines)-1])
	}
}

func TestLookupMatch(t *testing.T) {
	out := runLookup(t, buildLookupTrie(), nil, "match ca*\nquit\n")
	if !strings.Contains(out, "cab cap car cat") {
		t.Errorf("unexpected match output: %q", out)
	}
}

func TestLookupNear(t *testing.T) {
	out := runLookup(t, nil, buildLookupBKTree(), "near book 1\nquit\n")
	for _, w := range []string{"book", "books", "boo", "boon", "cook"} {
		if !strings.Contains(out, w) {
			t.Errorf("expected near results to contain %q, got %q", w, out)
		}
	}
}

func TestLookupNoIndexLoaded(t *testing.T) {
	out := runLookup(t, nil, nil, "search cat\nnear book\nquit\n")
	if !strings.Contains(out, "no trie loaded") {
		t.Errorf("expected a no-trie message, got %q", out)
	}
	if !strings.Contains(out, "no bktree loaded") {
		t.Errorf("expected a no-bktree message, got %q", out)
	}
}

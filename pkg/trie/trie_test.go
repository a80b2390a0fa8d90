package trie

import (
	"bytes"
	"reflect"
	"sort"
	"testing"
)

func buildTrie(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestSearchAndPrefix(t *testing.T) {
	tr := buildTrie("the", "them", "there")

	for _, w := range []string{"the", "them", "there"} {
		if !tr.Search(w) {
			t.Errorf("Search(%q) = false, want true", w)
		}
	}

	for _, w := range []string{"th", "thee", "cat", ""} {
		if tr.Search(w) {
			t.Errorf("Search(%q) = true, want false", w)
		}
	}

	if !tr.StartsWith("ther") {
		t.Error("StartsWith(ther) = false, want true")
	}
	if tr.StartsWith("thez") {
		t.Error("StartsWith(thez) = true, want false")
	}
}

func TestValidEndings(t *testing.T) {
	tr := buildTrie("the", "them", "there")

	if got := tr.ValidEndings("themanran", 0); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("ValidEndings(themanran) = %v, want [3 4]", got)
	}
	if got := tr.ValidEndings("thereafter", 0); !reflect.DeepEqual(got, []int{3, 5}) {
		t.Errorf("ValidEndings(thereafter) = %v, want [3 5]", got)
	}
}

func TestInsertIdempotent(t *testing.T) {
	tr := buildTrie("cat", "cat", "cat")
	if !tr.Search("cat") {
		t.Fatal("expected cat to be stored")
	}
	if len(tr.CollectMatches("cat")) != 1 {
		t.Errorf("expected exactly one match for repeated insert")
	}
}

func TestMatchPatternAndCollect(t *testing.T) {
	tr := buildTrie("cat", "car", "cab", "cap", "dog")

	if !tr.MatchPattern("ca*") {
		t.Error("MatchPattern(ca*) = false, want true")
	}
	got := tr.CollectMatches("ca*")
	want := []string{"cab", "cap", "car", "cat"}
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectMatches(ca*) = %v, want %v", got, want)
	}

	if !tr.MatchPattern("d*g") {
		t.Error("MatchPattern(d*g) = false, want true")
	}
	if got := tr.CollectMatches("d*g"); !reflect.DeepEqual(got, []string{"dog"}) {
		t.Errorf("CollectMatches(d*g) = %v, want [dog]", got)
	}

	if tr.MatchPattern("ca**") {
		t.Error("MatchPattern(ca**) = true, want false (length mismatch)")
	}
}

func TestMatchPatternRejectsNonAlpha(t *testing.T) {
	tr := buildTrie("cat")
	if tr.MatchPattern("c1t") {
		t.Error("MatchPattern with non-letter literal should be false")
	}
	if len(tr.CollectMatches("c1t")) != 0 {
		t.Error("CollectMatches with non-letter literal should be empty")
	}
}

func TestWalkAlphabeticalOrder(t *testing.T) {
	tr := buildTrie("dog", "cat", "car", "cab")
	var words []string
	tr.Walk(func(w string) {
		words = append(words, w)
	})
	want := []string{"cab", "car", "cat", "dog"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Walk order = %v, want %v", words, want)
	}
}

func TestEmptyTrie(t *testing.T) {
	tr := New()
	if tr.Search("anything") {
		t.Error("empty trie should not match anything")
	}
	var count int
	tr.Walk(func(string) { count++ })
	if count != 0 {
		t.Errorf("empty trie Walk visited %d words, want 0", count)
	}
}

func TestRoundTrip(t *testing.T) {
	words := []string{"apple", "app", "application", "banana", "band", "bandana"}
	tr := buildTrie(words...)

	var buf bytes.Buffer
	if err := Encode(tr, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for _, w := range words {
		if !decoded.Search(w) {
			t.Errorf("decoded trie missing word %q", w)
		}
	}
	if decoded.Search("nope") {
		t.Error("decoded trie should not contain unrelated word")
	}
}

func TestRoundTripEmpty(t *testing.T) {
	tr := New()
	var buf bytes.Buffer
	if err := Encode(tr, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Search("") {
		t.Error("empty trie should not report the empty word as stored")
	}
}

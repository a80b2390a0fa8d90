// Package wordprob tracks how often words co-occur immediately before and
// after a given word, as a supplemental analysis pass over the same
// wordlists pkg/builder indexes.
package wordprob

import "math"

// Missing is returned by count lookups for a word that has never been
// recorded. It is the sentinel the original analyzer returns rather than
// an ok bool, so callers compare against it directly.
const Missing = math.MaxUint64

// WordProb tracks, for a single word, how many times each other word has
// been observed immediately before and after it.
type WordProb struct {
	before map[string]uint64
	after  map[string]uint64
}

// New returns an empty WordProb.
func New() *WordProb {
	return &WordProb{
		before: make(map[string]uint64),
		after:  make(map[string]uint64),
	}
}

// HasBeforeWord reports whether word has been recorded in the before set.
func (p *WordProb) HasBeforeWord(word string) bool {
	_, ok := p.before[word]
	return ok
}

// HasAfterWord reports whether word has been recorded in the after set.
func (p *WordProb) HasAfterWord(word string) bool {
	_, ok := p.after[word]
	return ok
}

// AddBeforeWord records word in the before set with the given count if it
// is not already present. Subsequent calls for the same word are no-ops;
// use IncreaseBeforeWordCount to accumulate further occurrences.
func (p *WordProb) AddBeforeWord(word string, value uint64) {
	if !p.HasBeforeWord(word) {
		p.before[word] = value
	}
}

// AddAfterWord records word in the after set with the given count if it is
// not already present.
func (p *WordProb) AddAfterWord(word string, value uint64) {
	if !p.HasAfterWord(word) {
		p.after[word] = value
	}
}

// BeforeWordCount returns the recorded count for word in the before set,
// or Missing if word has never been recorded.
func (p *WordProb) BeforeWordCount(word string) uint64 {
	if v, ok := p.before[word]; ok {
		return v
	}
	return Missing
}

// AfterWordCount returns the recorded count for word in the after set, or
// Missing if word has never been recorded.
func (p *WordProb) AfterWordCount(word string) uint64 {
	if v, ok := p.after[word]; ok {
		return v
	}
	return Missing
}

// IncreaseBeforeWordCount adds value to word's before count if word is
// already present. It is a no-op for a word never added with
// AddBeforeWord.
func (p *WordProb) IncreaseBeforeWordCount(word string, value uint64) {
	if p.HasBeforeWord(word) {
		p.before[word] += value
	}
}

// IncreaseAfterWordCount adds value to word's after count if word is
// already present.
func (p *WordProb) IncreaseAfterWordCount(word string, value uint64) {
	if p.HasAfterWord(word) {
		p.after[word] += value
	}
}

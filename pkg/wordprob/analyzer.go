package wordprob

// ContextAnalyzer tracks co-occurrence context for a whole vocabulary: a
// WordProb per distinct word, created lazily on first reference.
type ContextAnalyzer struct {
	contextMap map[string]*WordProb
}

// NewContextAnalyzer returns an empty ContextAnalyzer.
func NewContextAnalyzer() *ContextAnalyzer {
	return &ContextAnalyzer{contextMap: make(map[string]*WordProb)}
}

// HasWord reports whether word has ever been observed.
func (a *ContextAnalyzer) HasWord(word string) bool {
	_, ok := a.contextMap[word]
	return ok
}

// AddWord ensures word has a WordProb entry, creating one if this is the
// first time it has been seen.
func (a *ContextAnalyzer) AddWord(word string) {
	if !a.HasWord(word) {
		a.contextMap[word] = New()
	}
}

// AddBeforeWord records beforeWord as having appeared immediately before
// word, creating word's entry if needed.
func (a *ContextAnalyzer) AddBeforeWord(word, beforeWord string, value uint64) {
	a.AddWord(word)
	a.contextMap[word].AddBeforeWord(beforeWord, value)
}

// AddAfterWord records afterWord as having appeared immediately after
// word, creating word's entry if needed.
func (a *ContextAnalyzer) AddAfterWord(word, afterWord string, value uint64) {
	a.AddWord(word)
	a.contextMap[word].AddAfterWord(afterWord, value)
}

// BeforeWordCount returns how many times beforeWord has been observed
// immediately before word, or Missing if word is unknown or beforeWord was
// never recorded for it.
func (a *ContextAnalyzer) BeforeWordCount(word, beforeWord string) uint64 {
	if !a.HasWord(word) {
		return Missing
	}
	return a.contextMap[word].BeforeWordCount(beforeWord)
}

// AfterWordCount returns how many times afterWord has been observed
// immediately after word, or Missing if word is unknown or afterWord was
// never recorded for it.
func (a *ContextAnalyzer) AfterWordCount(word, afterWord string) uint64 {
	if !a.HasWord(word) {
		return Missing
	}
	return a.contextMap[word].AfterWordCount(afterWord)
}

// IncreaseBeforeWordCount adds value to beforeWord's before count under
// word, if that pair has already been recorded.
func (a *ContextAnalyzer) IncreaseBeforeWordCount(word, beforeWord string, value uint64) {
	if a.HasWord(word) {
		a.contextMap[word].IncreaseBeforeWordCount(beforeWord, value)
	}
}

// IncreaseAfterWordCount adds value to afterWord's after count under word,
// if that pair has already been recorded.
func (a *ContextAnalyzer) IncreaseAfterWordCount(word, afterWord string, value uint64) {
	if a.HasWord(word) {
		a.contextMap[word].IncreaseAfterWordCount(afterWord, value)
	}
}

// Observe records a full trigram of context: word appears with prevWord
// immediately before it and nextWord immediately after it. Either side may
// be the empty string to signal there is no neighbour (start/end of line).
// First occurrences are recorded via Add*, repeats bump the count via
// Increase*, matching how pkg/builder streams a wordlist line by line.
func (a *ContextAnalyzer) Observe(word, prevWord, nextWord string) {
	a.AddWord(word)
	if prevWord != "" {
		if a.contextMap[word].HasBeforeWord(prevWord) {
			a.contextMap[word].IncreaseBeforeWordCount(prevWord, 1)
		} else {
			a.contextMap[word].AddBeforeWord(prevWord, 1)
		}
	}
	if nextWord != "" {
		if a.contextMap[word].HasAfterWord(nextWord) {
			a.contextMap[word].IncreaseAfterWordCount(nextWord, 1)
		} else {
			a.contextMap[word].AddAfterWord(nextWord, 1)
		}
	}
}

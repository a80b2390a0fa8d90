package utils

// DedupTracker records which accepted words have already been seen during
// an ingest pass, so the builder can report a duplicate count in the build
// manifest without the trees themselves needing to expose one (their own
// inserts are already idempotent).
type DedupTracker struct {
	seen map[string]bool
}

// NewDedupTracker creates an empty tracker.
func NewDedupTracker() *DedupTracker {
	return &DedupTracker{seen: make(map[string]bool)}
}

// Seen marks word as encountered and reports whether it had already been
// seen before this call.
func (t *DedupTracker) Seen(word string) bool {
	if t.seen[word] {
		return true
	}
	t.seen[word] = true
	return false
}

// Count returns the number of distinct words observed so far.
func (t *DedupTracker) Count() int {
	return len(t.seen)
}

// Package builder implements the ingest-normalise-filter-build pipeline
// that turns a plain wordlist into a Trie and a BK-tree on disk, plus an
// optional co-occurrence pass and build manifest.
package builder

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkovacs/lexiprep/internal/logger"
	"github.com/mkovacs/lexiprep/internal/utils"
	"github.com/mkovacs/lexiprep/pkg/bktree"
	"github.com/mkovacs/lexiprep/pkg/manifest"
	"github.com/mkovacs/lexiprep/pkg/trie"
	"github.com/mkovacs/lexiprep/pkg/wordprob"
)

// Builder reads a wordlist once and can then emit a Trie, a BK-tree, and
// an optional context analysis pass over the same in-memory word list.
type Builder struct {
	words       []string
	sourcePath  string
	wordsRead   int
	rejected    int
	duplicates  int
	shuffleSeed int64
	usedSeed    int64
	log         *log.Logger
}

// New returns an empty Builder. shuffleSeed pins the BK-tree shuffle order;
// 0 means "derive a seed from the bytes of the accepted words", matching
// pkg/config's BuilderConfig.BKTreeShuffleSeed default. The logger is built
// at call time so it picks up whatever global log level the caller has
// already configured, rather than freezing it at package load.
func New(shuffleSeed int64) *Builder {
	return &Builder{shuffleSeed: shuffleSeed, log: logger.New("builder")}
}

// SetLogFormat replaces the Builder's logger with one built against an
// explicit caller/timestamp/formatter configuration, overriding the plain
// text logger New installs by default. It exists for callers that expose
// log formatting as a user-facing option (cmd/prepdata's -log-format flag).
func (b *Builder) SetLogFormat(caller, timestamp bool, formatter log.Formatter) {
	b.log = logger.NewWithConfig("builder", log.GetLevel(), caller, timestamp, formatter)
}

// WordsRead returns how many lines were read from the source file.
func (b *Builder) WordsRead() int { return b.wordsRead }

// Accepted returns how many words survived normalisation and filtering.
func (b *Builder) Accepted() int { return len(b.words) }

// Rejected returns how many lines failed the a-z filter after normalising.
func (b *Builder) Rejected() int { return b.rejected }

// Duplicates returns how many accepted lines were already seen.
func (b *Builder) Duplicates() int { return b.duplicates }

// ReadWordlist reads path line by line, normalising (stripping CR/LF and
// downcasing A-Z) and filtering (rejecting anything outside a-z, including
// the empty line) each one before storing it. Duplicate words are kept out
// of the in-memory list but counted, so downstream trees are never given
// the same word twice.
func (b *Builder) ReadWordlist(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open wordlist %s: %w", path, err)
	}
	defer file.Close()

	b.sourcePath = path
	dedup := utils.NewDedupTracker()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		b.wordsRead++
		word := utils.NormalizeLine(scanner.Text())

		if !utils.IsLowerAlpha(word) {
			b.rejected++
			continue
		}

		if dedup.Seen(word) {
			b.duplicates++
			continue
		}

		b.words = append(b.words, word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read wordlist %s: %w", path, err)
	}

	b.log.Debugf("read %d lines from %s: %d accepted, %d rejected, %d duplicates",
		b.wordsRead, path, len(b.words), b.rejected, b.duplicates)

	return nil
}

// BuildTrie inserts every accepted word into a fresh Trie and writes it to
// path using the trie package's binary codec.
func (b *Builder) BuildTrie(path string) error {
	t := trie.New()
	for _, w := range b.words {
		t.Insert(w)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trie file %s: %w", path, err)
	}
	defer file.Close()

	if err := trie.Encode(t, file); err != nil {
		return fmt.Errorf("encode trie to %s: %w", path, err)
	}

	b.log.Debugf("wrote trie with %d words to %s", len(b.words), path)
	return nil
}

// BuildBKTree shuffles a copy of the accepted words for a better-balanced
// tree, inserts them into a fresh BK-tree, and writes it to path.
func (b *Builder) BuildBKTree(path string) error {
	shuffled := make([]string, len(b.words))
	copy(shuffled, b.words)

	seed := b.shuffleSeed
	if seed == 0 {
		seed = deriveSeed(b.words)
	}
	b.usedSeed = seed
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	tree := bktree.New()
	for _, w := range shuffled {
		tree.Insert(w)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bktree file %s: %w", path, err)
	}
	defer file.Close()

	if err := bktree.Encode(tree, file); err != nil {
		return fmt.Errorf("encode bktree to %s: %w", path, err)
	}

	b.log.Debugf("wrote bktree with %d words to %s (seed=%d)", len(shuffled), path, seed)
	return nil
}

// deriveSeed produces a stable, non-zero seed from the word list itself,
// so an unconfigured build is still reproducible for a given input file
// rather than depending on process entropy.
func deriveSeed(words []string) int64 {
	var h int64 = 1469598103934665603
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			h ^= int64(w[i])
			h *= 1099511628211
		}
	}
	if h == 0 {
		h = 1
	}
	return h
}

// CollectContext runs a second pass over path, recording for each word
// which words appeared immediately before and after it on the same line.
// It reuses the same normalise/filter rules as ReadWordlist but does not
// touch the Builder's own word list.
func (b *Builder) CollectContext(path string) (*wordprob.ContextAnalyzer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist %s: %w", path, err)
	}
	defer file.Close()

	analyzer := wordprob.NewContextAnalyzer()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := utils.NormalizeLine(scanner.Text())
		words := splitWords(line)

		for i, w := range words {
			prev := ""
			if i > 0 {
				prev = words[i-1]
			}
			next := ""
			if i+1 < len(words) {
				next = words[i+1]
			}
			analyzer.Observe(w, prev, next)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}

	return analyzer, nil
}

// splitWords splits a normalised line into space-separated a-z tokens,
// discarding anything that fails the filter.
func splitWords(line string) []string {
	var words []string
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && line[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			candidate := line[start:i]
			if utils.IsLowerAlpha(candidate) {
				words = append(words, candidate)
			}
			start = -1
		}
	}
	return words
}

// Manifest builds a Manifest describing this run's word counts and, if
// BuildBKTree ran, the shuffle seed it actually used. now is a parameter
// so callers can pin build timestamps in tests.
func (b *Builder) Manifest(now time.Time) *manifest.Manifest {
	m := manifest.New(b.sourcePath, now)
	m.WordsRead = b.wordsRead
	m.WordsAccepted = len(b.words)
	m.WordsRejected = b.rejected
	m.Duplicates = b.duplicates
	m.ShuffleSeed = b.usedSeed
	return m
}

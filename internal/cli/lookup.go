package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mkovacs/lexiprep/internal/logger"
	"github.com/mkovacs/lexiprep/pkg/bktree"
	"github.com/mkovacs/lexiprep/pkg/cache"
	"github.com/mkovacs/lexiprep/pkg/trie"
)

// LookupHandler runs a synchronous, line-oriented REPL over a loaded Trie
// and/or BK-Tree. Either index may be nil, in which case queries needing
// it report that it is unavailable rather than panicking.
type LookupHandler struct {
	trie             *trie.Trie
	bktree           *bktree.Tree
	defaultTolerance int
	cache            *cache.QueryCache
	in               *bufio.Scanner
	out              io.Writer
	log              *log.Logger
}

// NewLookupHandler returns a handler reading commands from in and writing
// results to out. cacheSize <= 0 disables result caching. The logger is
// built here rather than at package load, so it picks up whatever global
// log level the caller has already configured.
func NewLookupHandler(t *trie.Trie, b *bktree.Tree, defaultTolerance, cacheSize int, in io.Reader, out io.Writer) *LookupHandler {
	l := logger.New("lookup")
	var qc *cache.QueryCache
	if cacheSize > 0 {
		var err error
		qc, err = cache.New(cacheSize)
		if err != nil {
			l.Warnf("failed to create query cache: %v", err)
		}
	}
	return &LookupHandler{
		trie:             t,
		bktree:           b,
		defaultTolerance: defaultTolerance,
		cache:            qc,
		in:               bufio.NewScanner(in),
		out:              out,
		log:              l,
	}
}

// SetLogFormat replaces the handler's logger with one built against an
// explicit caller/timestamp/formatter configuration, overriding the plain
// text logger NewLookupHandler installs by default. It exists for callers
// that expose log formatting as a user-facing option (cmd/lookup's
// -log-format flag).
func (h *LookupHandler) SetLogFormat(caller, timestamp bool, formatter log.Formatter) {
	h.log = logger.NewWithConfig("lookup", log.GetLevel(), caller, timestamp, formatter)
}

// Start reads commands until EOF or a "quit" command.
//
// Commands:
//
//	search <word>
//	starts <prefix>
//	endings <text>
//	match <pattern>
//	near <word> [tolerance]
//	quit
func (h *LookupHandler) Start() error {
	fmt.Fprintln(h.out, "lexiprep lookup — type 'quit' to exit")
	for h.in.Scan() {
		line := strings.TrimSpace(h.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		h.handle(line)
	}
	return h.in.Err()
}

func (h *LookupHandler) handle(line string) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "search":
		h.cmdSearch(args)
	case "starts":
		h.cmdStarts(args)
	case "endings":
		h.cmdEndings(args)
	case "match":
		h.cmdMatch(args)
	case "near":
		h.cmdNear(args)
	default:
		fmt.Fprintf(h.out, "unknown command: %s\n", cmd)
	}
}

func (h *LookupHandler) cmdSearch(args []string) {
	if h.trie == nil {
		fmt.Fprintln(h.out, "no trie loaded")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: search <word>")
		return
	}
	fmt.Fprintln(h.out, h.trie.Search(args[0]))
}

func (h *LookupHandler) cmdStarts(args []string) {
	if h.trie == nil {
		fmt.Fprintln(h.out, "no trie loaded")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: starts <prefix>")
		return
	}
	fmt.Fprintln(h.out, h.trie.StartsWith(args[0]))
}

func (h *LookupHandler) cmdEndings(args []string) {
	if h.trie == nil {
		fmt.Fprintln(h.out, "no trie loaded")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: endings <text>")
		return
	}
	endings := h.trie.ValidEndings(args[0], 0)
	fmt.Fprintln(h.out, endings)
}

func (h *LookupHandler) cmdMatch(args []string) {
	if h.trie == nil {
		fmt.Fprintln(h.out, "no trie loaded")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: match <pattern>")
		return
	}
	pattern := args[0]

	if h.cache != nil {
		if cached, ok := h.cache.Get("match:" + pattern); ok {
			fmt.Fprintln(h.out, strings.Join(cached, " "))
			return
		}
	}

	matches := h.trie.CollectMatches(pattern)
	if h.cache != nil {
		h.cache.Put("match:"+pattern, matches)
	}
	fmt.Fprintln(h.out, strings.Join(matches, " "))
}

func (h *LookupHandler) cmdNear(args []string) {
	if h.bktree == nil {
		fmt.Fprintln(h.out, "no bktree loaded")
		return
	}
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(h.out, "usage: near <word> [tolerance]")
		return
	}

	tolerance := h.defaultTolerance
	if len(args) == 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			fmt.Fprintln(h.out, "tolerance must be a non-negative integer")
			return
		}
		tolerance = v
	}

	cacheKey := fmt.Sprintf("near:%s:%d", args[0], tolerance)
	if h.cache != nil {
		if cached, ok := h.cache.Get(cacheKey); ok {
			fmt.Fprintln(h.out, strings.Join(cached, " "))
			return
		}
	}

	results := h.bktree.Find(args[0], uint(tolerance))
	if h.cache != nil {
		h.cache.Put(cacheKey, results)
	}
	fmt.Fprintln(h.out, strings.Join(results, " "))
}

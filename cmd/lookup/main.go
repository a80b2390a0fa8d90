// Command lookup loads a Trie and/or BK-Tree built by prepdata and offers
// an interactive REPL for exercising them: search, starts, endings, match,
// and near queries.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mkovacs/lexiprep/internal/cli"
	"github.com/mkovacs/lexiprep/pkg/bktree"
	"github.com/mkovacs/lexiprep/pkg/config"
	"github.com/mkovacs/lexiprep/pkg/trie"
)

const usage = `Usage: lookup [OPTIONS]

Optional parameters:
  -h, --help                  Display this usage information
  -t, --trie <path>           Load a Trie index built by prepdata
  -b, --bktree <path>         Load a BK-Tree index built by prepdata
  -config <path>              Path to a TOML config file
  -d, --debug                 Enable debug logging
  -tolerance <n>              Default BK-Tree tolerance for 'near' queries
  -log-format <fmt>           Log format: text (default), json, or logfmt

At least one of -t/--trie or -b/--bktree must be given.
`

func argSpec() []cli.Argument {
	return []cli.Argument{
		{Name: "-h", IsBool: true},
		{Name: "--help", IsBool: true},
		{Name: "-t", IsBool: false},
		{Name: "--trie", IsBool: false},
		{Name: "-b", IsBool: false},
		{Name: "--bktree", IsBool: false},
		{Name: "-config", IsBool: false},
		{Name: "-d", IsBool: true},
		{Name: "--debug", IsBool: true},
		{Name: "-tolerance", IsBool: false},
		{Name: "-log-format", IsBool: false},
	}
}

func main() {
	parser := cli.NewArgParser(os.Args[1:], argSpec())
	if err := parser.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nUse 'lookup -h' or 'lookup --help' to display help\n", err)
		os.Exit(1)
	}

	if parser.Present("-h") || parser.Present("--help") {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	}

	if parser.Present("-d") || parser.Present("--debug") {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if parser.Present("-t") && parser.Present("--trie") {
		fmt.Fprintln(os.Stderr, "Error: both -t and --trie are specified")
		os.Exit(1)
	}
	if parser.Present("-b") && parser.Present("--bktree") {
		fmt.Fprintln(os.Stderr, "Error: both -b and --bktree are specified")
		os.Exit(1)
	}

	triePath, trieErr := parser.ResolveExclusive("-t", "--trie")
	bkPath, bkErr := parser.ResolveExclusive("-b", "--bktree")
	if trieErr != nil && bkErr != nil {
		fmt.Fprintln(os.Stderr, "Error: at least one of -t/--trie or -b/--bktree is required")
		os.Exit(1)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(parser.Value("-config"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Debugf("using config at: %s", cfgPath)

	var loadedTrie *trie.Trie
	if trieErr == nil {
		loadedTrie, err = loadTrie(triePath)
		if err != nil {
			log.Fatalf("failed to load trie from %s: %v", triePath, err)
		}
		log.Infof("loaded trie from %s", triePath)
	}

	var loadedBKTree *bktree.Tree
	if bkErr == nil {
		loadedBKTree, err = loadBKTree(bkPath)
		if err != nil {
			log.Fatalf("failed to load bktree from %s: %v", bkPath, err)
		}
		log.Infof("loaded bktree from %s", bkPath)
	}

	tolerance := cfg.Lookup.DefaultTolerance
	if v := parser.Value("-tolerance"); v != "" {
		if n, err := parseNonNegativeInt(v); err == nil {
			tolerance = n
		} else {
			log.Warnf("ignoring invalid -tolerance value %q", v)
		}
	}

	handler := cli.NewLookupHandler(loadedTrie, loadedBKTree, tolerance, cfg.Cache.Size, os.Stdin, os.Stdout)

	if v := parser.Value("-log-format"); v != "" {
		formatter, err := cli.ParseLogFormat(v)
		if err != nil {
			log.Fatalf("%v", err)
		}
		handler.SetLogFormat(parser.Present("-d") || parser.Present("--debug"), true, formatter)
	}

	if err := handler.Start(); err != nil {
		log.Fatalf("lookup REPL error: %v", err)
	}
}

func loadTrie(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trie.Decode(f)
}

func loadBKTree(path string) (*bktree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bktree.Decode(f)
}

func parseNonNegativeInt(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a non-negative integer: %s", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

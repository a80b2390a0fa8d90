// Command prepdata preprocesses a wordlist into a Trie and/or a BK-Tree
// index, writing them to disk in lexiprep's binary codec.
//
// # Usage
//
//	prepdata -w wordlist.txt -t trie.bin
//	prepdata -w wordlist.txt -b bktree.bin
//	prepdata -w wordlist.txt -t trie.bin -b bktree.bin -manifest build.yaml
//
// -w/--wordlist is always required. At least one of -t/--build-trie or
// -b/--build-bktree must be given. -h/--help as the first argument prints
// usage and exits 0, ignoring every other argument.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/mkovacs/lexiprep/internal/cli"
	"github.com/mkovacs/lexiprep/pkg/builder"
	"github.com/mkovacs/lexiprep/pkg/config"
)

const (
	appVersion = "0.1.0"
	appName    = "lexiprep"
)

const usage = `Usage: prepdata [OPTIONS]

Required parameters:
  -w, --wordlist <path>       Input file with the list of words (always required)
  -t, --build-trie <path>     Output file for the built Trie
                               (required if --build-bktree is not used)
  -b, --build-bktree <path>   Output file for the built BK-Tree
                               (required if --build-trie is not used)

Optional parameters:
  -h, --help                  Display this usage information
  -config <path>              Path to a TOML config file
  -d, --debug                 Enable debug logging
  -manifest <path>            Write a YAML build manifest to this path
  -log-format <fmt>           Log format: text (default), json, or logfmt
  -version                    Print version information and exit

Examples:
  prepdata -w wordlist.txt -t trie.bin
  prepdata -w wordlist.txt -b bktree.bin
  prepdata -w wordlist.txt -t trie.bin -b bktree.bin
`

func argSpec() []cli.Argument {
	return []cli.Argument{
		{Name: "-h", IsBool: true},
		{Name: "--help", IsBool: true},
		{Name: "-w", IsBool: false},
		{Name: "--wordlist", IsBool: false},
		{Name: "-t", IsBool: false},
		{Name: "--build-trie", IsBool: false},
		{Name: "-b", IsBool: false},
		{Name: "--build-bktree", IsBool: false},
		{Name: "-config", IsBool: false},
		{Name: "-d", IsBool: true},
		{Name: "--debug", IsBool: true},
		{Name: "-manifest", IsBool: false},
		{Name: "-log-format", IsBool: false},
		{Name: "-version", IsBool: true},
	}
}

func main() {
	parser := cli.NewArgParser(os.Args[1:], argSpec())
	if err := parser.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nUse 'prepdata -h' or 'prepdata --help' to display help\n", err)
		os.Exit(1)
	}

	if parser.Present("-h") || parser.Present("--help") {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	}

	if parser.Present("-version") {
		printVersion()
		os.Exit(0)
	}

	if parser.Present("-d") || parser.Present("--debug") {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	wordlistPath, err := parser.ResolveExclusive("-w", "--wordlist")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nUse 'prepdata -h' or 'prepdata --help' to display help\n", err)
		os.Exit(1)
	}

	if parser.Present("-t") && parser.Present("--build-trie") {
		fmt.Fprintln(os.Stderr, "Error: both -t and --build-trie are specified")
		os.Exit(1)
	}
	if parser.Present("-b") && parser.Present("--build-bktree") {
		fmt.Fprintln(os.Stderr, "Error: both -b and --build-bktree are specified")
		os.Exit(1)
	}

	triePath, trieErr := parser.ResolveExclusive("-t", "--build-trie")
	bkPath, bkErr := parser.ResolveExclusive("-b", "--build-bktree")
	if trieErr != nil && bkErr != nil {
		fmt.Fprintln(os.Stderr, "Error: at least one of -t/--build-trie or -b/--build-bktree is required")
		os.Exit(1)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(parser.Value("-config"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Debugf("using config at: %s", cfgPath)

	b := builder.New(cfg.Builder.BKTreeShuffleSeed)

	if v := parser.Value("-log-format"); v != "" {
		formatter, err := cli.ParseLogFormat(v)
		if err != nil {
			log.Fatalf("%v", err)
		}
		b.SetLogFormat(parser.Present("-d") || parser.Present("--debug"), true, formatter)
	}

	if err := b.ReadWordlist(wordlistPath); err != nil {
		log.Fatalf("failed to read wordlist: %v", err)
	}
	log.Infof("read %d words: %d accepted, %d rejected, %d duplicates",
		b.WordsRead(), b.Accepted(), b.Rejected(), b.Duplicates())

	if trieErr == nil {
		if err := b.BuildTrie(triePath); err != nil {
			log.Fatalf("failed to build trie: %v", err)
		}
		log.Infof("wrote trie to %s", triePath)
	}

	if bkErr == nil {
		if err := b.BuildBKTree(bkPath); err != nil {
			log.Fatalf("failed to build bktree: %v", err)
		}
		log.Infof("wrote bktree to %s", bkPath)
	}

	manifestPath := parser.Value("-manifest")
	if manifestPath == "" && cfg.Builder.EmitManifest {
		manifestPath = defaultManifestPath(wordlistPath)
	}
	if manifestPath != "" {
		m := b.Manifest(time.Now())
		if trieErr == nil {
			m.TriePath = triePath
		}
		if bkErr == nil {
			m.BKTreePath = bkPath
		}
		if err := m.Save(manifestPath); err != nil {
			log.Fatalf("failed to write manifest: %v", err)
		}
		log.Infof("wrote manifest to %s: %s", manifestPath, m.Summary())
	}
}

func defaultManifestPath(wordlistPath string) string {
	return wordlistPath + ".manifest.yaml"
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print(fmt.Sprintf("[ %s ] Preprocesses wordlists into Trie/BK-Tree indexes", appName))
	logger.Print("", "version", appVersion)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

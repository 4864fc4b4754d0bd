// Package main is the entry point for the blocksel debugging tool.
//
// blocksel reads an editor snapshot in JSON form and reconciles a
// render-layer selection against it, printing the resulting document
// selection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/blocksel/internal/config"
	"github.com/dshills/blocksel/internal/document"
	"github.com/dshills/blocksel/internal/logging"
	"github.com/dshills/blocksel/internal/reconcile"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath   string
	snapshotPath string
	anchorKey    string
	anchorOffset int
	focusKey     string
	focusOffset  int
	diagnostics  bool
	logLevel     string
	listKeys     bool
	showVersion  bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "blocksel %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.diagnostics {
		cfg.Diagnostics = true
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: stderr,
		Prefix: cfg.Log.Prefix,
	})
	logging.SetDefault(logger)

	data, err := readSnapshot(opts.snapshotPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	snap, err := document.ParseJSON(data, cfg.DocumentOptions()...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: decoding snapshot: %v\n", err)
		return 1
	}
	logger.Debug("loaded snapshot with %d blocks", snap.Content().Len())

	if opts.listKeys {
		for _, key := range snap.OffsetKeys() {
			fmt.Fprintln(stdout, key)
		}
		return 0
	}

	r := reconcile.NewFromConfig(cfg, reconcile.WithLogger(logger))
	sel, err := r.Reconcile(snap, opts.anchorKey, opts.anchorOffset, opts.focusKey, opts.focusOffset)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	out, err := sel.JSON()
	if err != nil {
		fmt.Fprintf(stderr, "Error: encoding selection: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	if sel == snap.Selection() {
		fmt.Fprintln(stdout, "unchanged")
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("blocksel", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.snapshotPath, "snapshot", "-", "Snapshot JSON file, - for stdin")
	fs.StringVar(&opts.anchorKey, "anchor", "", "Anchor leaf offset key")
	fs.IntVar(&opts.anchorOffset, "anchor-offset", 0, "Offset within the anchor leaf")
	fs.StringVar(&opts.focusKey, "focus", "", "Focus leaf offset key")
	fs.IntVar(&opts.focusOffset, "focus-offset", 0, "Offset within the focus leaf")
	fs.BoolVar(&opts.diagnostics, "diagnostics", false, "Enable diagnostic checks")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.listKeys, "keys", false, "List the snapshot's offset keys and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "blocksel - reconcile render selections against a document snapshot\n\n")
		fmt.Fprintf(stderr, "Usage: blocksel [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  blocksel -snapshot doc.json -keys\n")
		fmt.Fprintf(stderr, "  blocksel -snapshot doc.json -anchor b1-0-0 -anchor-offset 2 -focus b2-0-0 -focus-offset 1\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return opts, errors.New("unexpected arguments")
	}
	return opts, nil
}

func readSnapshot(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return data, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/filesystem"
	"fs-indexer/internal/indexer"
	"fs-indexer/internal/logging"
	"fs-indexer/internal/snapshot"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Cancel the walk on interrupt; the partial snapshot is still printed
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	root      string
	format    snapshot.Format
	kind      entry.Kind
	walker    indexer.WalkerConfig
	showSkips bool
	verbose   bool
}

func parseFlags(args []string, stdout, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("fsindex", flag.ContinueOnError)
	fs.SetOutput(stderr)

	root := fs.String("root", ".", "directory to index")
	format := fs.String("format", "", "output format: json or yaml")
	kind := fs.String("kind", "all", "entries to print: all, directories, files or links")
	workers := fs.String("workers", "", "walk concurrency: N, auto, or 0 for unbounded")
	showSkips := fs.Bool("show-skips", false, "print skipped entries to stderr")
	verbose := fs.Bool("v", false, "log traversal warnings to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts := &options{
		root:      *root,
		kind:      entry.KindUnknown,
		walker:    indexer.DefaultWalkerConfig(),
		showSkips: *showSkips,
		verbose:   *verbose,
	}

	if *format == "" {
		opts.format = defaultFormat(stdout)
	} else {
		parsed, err := snapshot.ParseFormat(*format)
		if err != nil {
			return nil, err
		}
		opts.format = parsed
	}

	if *kind != "" && *kind != "all" {
		parsed, err := entry.ParseKind(*kind)
		if err != nil {
			return nil, err
		}
		if parsed == entry.KindUnknown {
			return nil, fmt.Errorf("invalid entry kind %q", *kind)
		}
		opts.kind = parsed
	}

	if *workers != "" {
		limit, err := indexer.ParseConcurrency(*workers)
		if err != nil {
			return nil, fmt.Errorf("invalid -workers value %q: %w", *workers, err)
		}
		opts.walker.MaxConcurrency = limit
	}

	return opts, nil
}

// defaultFormat picks YAML for a terminal and JSON for pipes and files
func defaultFormat(w io.Writer) snapshot.Format {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return snapshot.FormatYAML
	}
	return snapshot.FormatJSON
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stdout, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger := logging.Discard()
	if opts.verbose {
		logging.SetOutput(stderr)
		logger = logging.Default()
	}

	idx := indexer.New(indexer.Config{
		Walker:   opts.walker,
		Provider: filesystem.NewLocal(filesystem.DefaultRetryConfig()),
		Logger:   logger,
	})

	result, err := idx.Index(ctx, opts.root)
	if result == nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	doc := snapshot.FromResult(result)
	if opts.kind != entry.KindUnknown {
		doc = doc.Filter(opts.kind)
	}

	if encErr := snapshot.Encode(stdout, doc, opts.format); encErr != nil {
		fmt.Fprintf(stderr, "Error: failed to write snapshot: %v\n", encErr)
		return exitError
	}

	if opts.showSkips {
		for _, skip := range result.Skips {
			fmt.Fprintf(stderr, "skipped: %v\n", skip)
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "Interrupted: %v (snapshot is partial)\n", err)
		return exitError
	}
	return exitOK
}

// Command volbyscrape downloads the 2017 parliamentary election results
// for one territorial unit from volby.cz and writes them to a CSV file.
//
// Usage:
//
//	volbyscrape <url> <output.csv>
//
// The URL must be a municipality listing page (ps32, Czech language).
// Progress and diagnostics go to stderr; the CSV file is the only output.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rjanotik/volby"
	volbycsv "github.com/rjanotik/volby/csv"
	"github.com/rjanotik/volby/goquery"
	volbyresty "github.com/rjanotik/volby/resty"
	"github.com/rjanotik/volby/scrape"
	volbyslog "github.com/rjanotik/volby/slog"
)

// Exit codes. Interruption gets a distinct code so shell wrappers can
// tell an aborted run from a failed one.
const (
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if scrape.IsCanceled(err) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(exitInterrupted)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

// Main represents the program. Source and Delay are fields so tests can
// point the program at a synthetic host without pacing.
type Main struct {
	Source volby.Source
	Delay  time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Source: volby.DefaultSource(),
		Delay:  scrape.DefaultDelay,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL    string `arg:"" help:"Municipality listing URL (a ps32 page with xjazyk=CZ)."`
	Output string `arg:"" help:"Path of the output CSV file." type:"path"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("volbyscrape"),
		kong.Description("Download election results for a territorial unit from volby.cz into a CSV file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if !m.Source.ValidIndexURL(cli.URL) {
		return volby.Errorf(volby.EINVALID,
			"not a municipality listing URL: %s (expected a %s page with %s)",
			cli.URL, m.Source.IndexPathMarker, m.Source.LanguageQuery)
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	fetcher := volbyslog.NewFetcher(volbyresty.NewFetcher(), logger)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher: fetcher,
		Index:   goquery.NewIndexExtractor(m.Source),
		Detail:  goquery.NewDetailExtractor(m.Source),
		Limiter: scrape.NewPacer(m.Delay),
	}

	fmt.Fprintln(stderr, "Loading municipality list...")
	results, err := scraper.Run(ctx, cli.URL, func(p scrape.Progress) {
		fmt.Fprintf(stderr, "[%d/%d] %s %s\n", p.Index, p.Total, p.Ref.Code, p.Ref.Name)
		if p.Err != nil {
			fmt.Fprintf(stderr, "  -> error processing %s: %v\n", p.Ref.Name, p.Err)
		}
		if p.Warning != "" {
			fmt.Fprintf(stderr, "  -> warning for %s: %s\n", p.Ref.Name, p.Warning)
		}
	})
	if err != nil {
		return err
	}

	// One atomic pass: the file is only created once every municipality
	// has been processed.
	f, err := os.Create(cli.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := volbycsv.NewWriter(f).WriteResults(results); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing results: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Done. %d municipalities saved to %s\n", len(results), cli.Output)
	return nil
}

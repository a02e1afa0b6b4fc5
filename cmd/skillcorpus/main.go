// Command skillcorpus refreshes a local corpus of skill pages from a
// skill registry's search results. For each result it saves the raw HTML
// under raw/, the extracted text under text/, and finishes by writing an
// index.tsv mapping each link to its text length.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"skillcorpus"
	"skillcorpus/crawl"
	"skillcorpus/fs"
	"skillcorpus/goquery"
	"skillcorpus/htmltext"
	corpushttp "skillcorpus/http"
	corpuslog "skillcorpus/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
// The defaults reproduce the standing refresh configuration, so running
// with no arguments refreshes the Type-related skill corpus.
type CLI struct {
	Base    string        `default:"https://skills.sh" help:"Skill registry origin"`
	Query   string        `short:"q" default:"Type" help:"Search query"`
	Out     string        `short:"o" default:"research/typescript-skills" help:"Output directory"`
	Timeout time.Duration `short:"t" default:"25s" help:"Fetch timeout per page"`
	Verbose bool          `short:"v" help:"Enable debug logging to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skillcorpus"),
		kong.Description("Refresh a local corpus of skill pages from search results"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	// Wire dependencies
	var fetcher skillcorpus.Fetcher = corpushttp.NewFetcher(corpushttp.WithTimeout(cli.Timeout))
	fetcher = corpuslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	refresher := &crawl.Refresher{
		Fetcher: fetcher,
		Links:   corpuslog.NewLoggingLinkExtractor(goquery.NewExtractor(), logger),
		Text:    htmltext.NewExtractor(),
		Store:   fs.NewStore(cli.Out),
		BaseURL: cli.Base,
		Query:   cli.Query,
	}

	result, err := refresher.Run(ctx, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "saved %d skill pages\n", result.Saved)
	return nil
}

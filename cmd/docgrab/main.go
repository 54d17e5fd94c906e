package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/fs"
	"github.com/fwojciec/docgrab/goquery"
	"github.com/fwojciec/docgrab/htmltomarkdown"
	grabhttp "github.com/fwojciec/docgrab/http"
	"github.com/fwojciec/docgrab/mslearn"
	"github.com/fwojciec/docgrab/pipeline"
	"github.com/fwojciec/docgrab/readability"
	grabslog "github.com/fwojciec/docgrab/slog"
	"github.com/fwojciec/docgrab/trafilatura"
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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docgrab"),
		kong.Description("Fetch articles from Microsoft Learn into a single JSON file"),
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

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.MaxResults < 1 || cli.MaxResults > mslearn.MaxResults {
		return fmt.Errorf("max-results must be between 1 and %d", mslearn.MaxResults)
	}
	if cli.Concurrency < 1 || cli.Concurrency > pipeline.MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d", pipeline.MaxConcurrency)
	}

	// Default the output file name to the query with spaces replaced.
	if cli.Output == "" {
		cli.Output = strings.ReplaceAll(cli.Query, " ", "_") + ".json"
	}
	if !strings.HasSuffix(cli.Output, ".json") {
		return fmt.Errorf("output file must end with .json")
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	searchOpts := []mslearn.Option{mslearn.WithTimeout(timeout)}
	if base := os.Getenv("DOCGRAB_SEARCH_URL"); base != "" {
		searchOpts = append(searchOpts, mslearn.WithBaseURL(base))
	}

	var search docgrab.SearchService = mslearn.NewClient(searchOpts...)
	var fetcher docgrab.Fetcher = grabhttp.NewFetcher(grabhttp.WithTimeout(timeout))
	defer fetcher.Close()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		search = grabslog.NewLoggingSearchService(search, logger)
		fetcher = grabslog.NewLoggingFetcher(fetcher, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Pipeline: &pipeline.Pipeline{
			Search:  search,
			Fetcher: fetcher,
			Extractor: docgrab.FallbackExtractor{
				goquery.NewExtractor(),
				readability.NewExtractor(),
				trafilatura.NewExtractor(),
			},
			Cleaner:     goquery.NewCleaner(goquery.WithKeepHosts("learn.microsoft.com")),
			Converter:   htmltomarkdown.NewConverter(),
			Concurrency: cli.Concurrency,
		},
		Writer: fs.NewWriter(cli.Dir, cli.Output),
	}

	cmd := &GrabCmd{
		Query:      cli.Query,
		MaxResults: cli.MaxResults,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Query       string        `short:"q" required:"" help:"Search query"`
	MaxResults  int           `short:"n" default:"15" help:"Maximum number of search results to fetch (1-30)"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit (1-30)"`
	Output      string        `short:"o" help:"Output file name, must end with .json (default: query with spaces replaced by underscores)"`
	Dir         string        `short:"d" default:"articles" help:"Output directory"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Timeout per network request"`
	Verbose     bool          `short:"v" help:"Log search and fetch operations to stderr"`
}

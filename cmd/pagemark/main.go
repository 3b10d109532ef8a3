package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/batch"
	"github.com/pagemark/pagemark/bloom"
	"github.com/pagemark/pagemark/fs"
	"github.com/pagemark/pagemark/gemini"
	"github.com/pagemark/pagemark/goquery"
	"github.com/pagemark/pagemark/htmltomarkdown"
	pmhttp "github.com/pagemark/pagemark/http"
	"github.com/pagemark/pagemark/readability"
	"github.com/pagemark/pagemark/rod"
	pmslog "github.com/pagemark/pagemark/slog"
	"github.com/pagemark/pagemark/sqlite"
	"github.com/pagemark/pagemark/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the extraction service.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExtractionService pagemark.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemark"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemark --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ExtractionService = sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = m.ExtractionService

	// Wire command-specific dependencies based on command.
	if cmd == "extract" {
		engine, err := buildEngine(cli.Extract.Engine, logger)
		if err != nil {
			return err
		}
		deps.Engine = pmslog.NewEngine(engine, logger)

		if isURL(cli.Extract.Source) {
			fetcher, err := buildFetcher(cli.Extract.Render, logger)
			if err != nil {
				return err
			}
			defer fetcher.Close()
			deps.Fetcher = fetcher
		}
	}

	if cmd == "batch" {
		engine, err := buildEngine(cli.Batch.Engine, logger)
		if err != nil {
			return err
		}

		fetcher, err := buildFetcher(cli.Batch.Render, logger)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		runner := &batch.Runner{
			Fetcher:     fetcher,
			Engine:      pmslog.NewEngine(engine, logger),
			EngineName:  cli.Batch.Engine,
			Sitemaps:    pmhttp.NewSitemapService(nil),
			RateLimiter: batch.NewDomainLimiter(cli.Batch.RPS),
			Dedup:       bloom.NewFilter(batchExpectedURLs, batchFalsePositiveRate),
			Concurrency: cli.Batch.Concurrency,
		}
		if cli.Batch.Save {
			runner.Extractions = m.ExtractionService
		}
		if cli.Batch.OutDir != "" {
			runner.Writer = fs.NewWriter(cli.Batch.OutDir)
		}
		if cli.Batch.CountTokens {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			runner.TokenCounter = tokenCounter
		}
		deps.Runner = runner
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, defaultModel)
	}

	return kongCtx.Run(deps)
}

const defaultModel = "gemini-2.5-flash"

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// Bloom filter sizing for batch URL dedup.
const (
	batchExpectedURLs      = 10000
	batchFalsePositiveRate = 0.01
)

// buildEngine constructs the selected extraction engine.
func buildEngine(name string, logger *slog.Logger) (pagemark.Engine, error) {
	switch name {
	case "goquery":
		return goquery.NewEngine(goquery.WithLogger(logger)), nil
	case "readability":
		return readability.NewEngine(htmltomarkdown.NewConverter(), logger), nil
	case "trafilatura":
		return trafilatura.NewEngine(htmltomarkdown.NewConverter(), logger), nil
	}
	return nil, pagemark.Errorf(pagemark.EINVALID, "unknown engine %q", name)
}

// buildFetcher constructs a fetcher: a headless browser when render is set,
// plain HTTP otherwise.
func buildFetcher(render bool, logger *slog.Logger) (pagemark.Fetcher, error) {
	if render {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return pmslog.NewFetcher(fetcher, logger), nil
	}
	return pmslog.NewFetcher(pmhttp.NewFetcher(), logger), nil
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagemark.db"
	}
	dir := filepath.Join(home, ".pagemark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagemark.db")
}

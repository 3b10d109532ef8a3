package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/batch"
	"github.com/pagemark/pagemark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Extractions pagemark.ExtractionService
	Engine      pagemark.Engine
	Fetcher     pagemark.Fetcher
	Runner      *batch.Runner
	Asker       pagemark.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Extract  ExtractCmd  `cmd:"" help:"Extract main content from a page"`
	Batch    BatchCmd    `cmd:"" help:"Extract many URLs concurrently"`
	List     ListCmd     `cmd:"" help:"List saved extractions"`
	Show     ShowCmd     `cmd:"" help:"Print a saved extraction"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved extraction"`
	Keywords KeywordsCmd `cmd:"" help:"Print the default boilerplate filter keywords"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about a saved extraction"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source      string `arg:"" help:"URL, file path, or - for stdin"`
	Mode        string `short:"m" default:"balanced" enum:"strict,balanced,comprehensive" help:"Extraction mode"`
	Engine      string `short:"e" default:"goquery" enum:"goquery,readability,trafilatura" help:"Extraction engine"`
	Render      bool   `short:"r" help:"Render the page in a headless browser before extracting"`
	URL         string `help:"Source URL recorded in the output header when reading from file or stdin"`
	Selection   string `help:"User-selected excerpt recorded in the output header"`
	KeywordFile string `short:"k" help:"File with newline-delimited boilerplate filter keywords"`
	NoFilter    bool   `help:"Skip the boilerplate section filter"`
	Output      string `short:"o" help:"Write output to a file instead of stdout"`
	Save        bool   `short:"s" help:"Save the extraction to the local database"`
	JSON        bool   `help:"Emit the full result as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" help:"URLs to extract"`
	FromFile    string   `short:"f" help:"Read URLs from a file (one per line)"`
	Sitemap     string   `help:"Discover URLs from this site's sitemap"`
	Filter      []string `short:"F" help:"Filter discovered URLs by regex (repeatable)"`
	Mode        string   `short:"m" default:"balanced" enum:"strict,balanced,comprehensive" help:"Extraction mode"`
	Engine      string   `short:"e" default:"goquery" enum:"goquery,readability,trafilatura" help:"Extraction engine"`
	Render      bool     `short:"r" help:"Render pages in a headless browser before extracting"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `default:"2" help:"Max requests per second per domain"`
	OutDir      string   `short:"o" help:"Write extractions as markdown files under this directory"`
	Save        bool     `short:"s" help:"Save extractions to the local database"`
	CountTokens bool     `help:"Count result tokens with the Gemini tokenizer"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only list extractions of this source URL"`
	Limit int    `default:"50" help:"Maximum number of extractions to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	ID       string `arg:"" help:"Extraction ID"`
	Question string `arg:"" help:"Question to ask about the page"`
}

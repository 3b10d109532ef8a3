// Package batch orchestrates extraction of many URLs: per-domain rate
// limiting, bounded concurrency, seen-URL dedup, retries, and optional
// persistence of the results.
package batch

import (
	"context"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pagemark/pagemark"
)

// Deduper reports whether a key was already seen, recording it as a side
// effect. bloom.Filter satisfies this.
type Deduper interface {
	TestAndAdd(key string) bool
}

// Runner extracts a set of URLs concurrently.
type Runner struct {
	Fetcher      pagemark.Fetcher
	Engine       pagemark.Engine
	EngineName   string // recorded on persisted extractions
	Config       pagemark.Config
	Sitemaps     pagemark.SitemapService    // optional; used by DiscoverURLs
	Extractions  pagemark.ExtractionService // optional persistence
	Writer       pagemark.ExtractionWriter  // optional file output
	TokenCounter pagemark.TokenCounter      // optional token accounting
	RateLimiter  pagemark.DomainLimiter     // optional per-domain throttle
	Dedup        Deduper                    // optional seen-URL filter
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Skipped   int
	Failed    int
	Bytes     int
	Tokens    int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// urlResult holds the outcome of processing a single URL.
type urlResult struct {
	position   int
	url        string
	extraction *pagemark.Result
	skipped    bool
	err        error
}

// DiscoverURLs expands a base URL into the page URLs listed by the site's
// sitemaps, applying the optional filter.
func (r *Runner) DiscoverURLs(ctx context.Context, baseURL string, filter *pagemark.URLFilter) ([]string, error) {
	if r.Sitemaps == nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "no sitemap service configured")
	}
	return r.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
}

// Run extracts all URLs and returns aggregate stats. Individual URL failures
// are soft: they are counted and reported via progress events, but do not
// abort the run. Per-URL events follow input order and each URL receives
// exactly one terminal event; an extraction that later fails to persist is
// reported as ProgressFailed, never ProgressCompleted.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan urlResult, len(urls))
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- r.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect everything first so events and persistence follow input order.
	results := make([]urlResult, len(urls))
	for result := range resultCh {
		results[result.position] = result
	}

	var extractedCount, skippedCount, failedCount int
	var totalBytes, totalTokens int
	completed := 0

	report := func(typ ProgressType, u string, err error) {
		if progress == nil {
			return
		}
		progress(ProgressEvent{
			Type:      typ,
			Completed: completed,
			Total:     total,
			URL:       u,
			Error:     err,
		})
	}

	for _, result := range results {
		completed++

		switch {
		case result.err != nil:
			failedCount++
			report(ProgressFailed, result.url, result.err)
		case result.skipped:
			skippedCount++
			report(ProgressSkipped, result.url, nil)
		default:
			extraction := &pagemark.Extraction{
				SourceURL: result.url,
				Title:     result.extraction.Context.Title,
				Content:   result.extraction.Text,
				Score:     result.extraction.Score,
				Engine:    r.EngineName,
				Mode:      string(r.Config.Mode),
			}
			if err := r.persist(ctx, extraction); err != nil {
				failedCount++
				report(ProgressFailed, result.url, err)
				continue
			}

			extractedCount++
			totalBytes += len(extraction.Content)
			if r.TokenCounter != nil {
				if tokens, err := r.TokenCounter.CountTokens(ctx, extraction.Content); err == nil {
					totalTokens += tokens
				}
			}
			report(ProgressCompleted, result.url, nil)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Extracted: extractedCount,
		Skipped:   skippedCount,
		Failed:    failedCount,
		Bytes:     totalBytes,
		Tokens:    totalTokens,
	}, nil
}

// persist stores the extraction through whichever sinks are configured.
func (r *Runner) persist(ctx context.Context, extraction *pagemark.Extraction) error {
	if r.Extractions != nil {
		if err := r.Extractions.CreateExtraction(ctx, extraction); err != nil {
			return err
		}
	}
	if r.Writer != nil {
		if _, err := r.Writer.WriteExtraction(ctx, extraction); err != nil {
			return err
		}
	}
	return nil
}

// processURL fetches and extracts a single URL.
func (r *Runner) processURL(ctx context.Context, position int, rawURL string) urlResult {
	result := urlResult{
		position: position,
		url:      rawURL,
	}

	if r.Dedup != nil && r.Dedup.TestAndAdd(rawURL) {
		result.skipped = true
		return result
	}

	if r.RateLimiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			result.err = pagemark.Errorf(pagemark.EINVALID, "invalid URL %q: %v", rawURL, err)
			return result
		}
		if err := r.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, r.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	cfg := r.Config
	cfg.SourceURL = rawURL
	extracted, err := r.Engine.Extract(html, cfg)
	if err != nil {
		result.err = err
		return result
	}

	result.extraction = extracted
	return result
}

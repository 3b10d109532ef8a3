package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagemark/pagemark"
)

// Ensure Fetcher implements pagemark.Fetcher.
var _ pagemark.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a pagemark.Fetcher with debug logging of fetch timing and
// payload size.
type Fetcher struct {
	next   pagemark.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher decorator.
func NewFetcher(next pagemark.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}

	f.logger.Debug("fetch",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

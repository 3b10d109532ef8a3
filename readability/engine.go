// Package readability provides an alternate extraction engine backed by
// go-readability. It delegates content identification to the readability
// algorithm and serializes the cleaned HTML through a Converter, so its
// results lack typed chunks and sub-scores.
package readability

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/pagemark/pagemark"
)

// Ensure Engine implements pagemark.Engine at compile time.
var _ pagemark.Engine = (*Engine)(nil)

// Engine wraps go-readability as a pagemark.Engine.
type Engine struct {
	conv   pagemark.Converter
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates a readability-backed engine. The converter produces the
// markdown body from the cleaned content HTML.
func NewEngine(conv pagemark.Converter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{conv: conv, logger: logger, now: time.Now}
}

// Extract processes raw HTML and returns the main content.
func (e *Engine) Extract(rawHTML string, cfg pagemark.Config) (*pagemark.Result, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	body, err := e.conv.Convert(article.Content)
	if err != nil {
		return nil, err
	}
	if !cfg.DisableBoundaryDetection {
		body = pagemark.NewBoilerplate(cfg.Keywords(), e.logger).Filter(body)
	}

	ctx := pagemark.Context{
		URL:       cfg.SourceURL,
		Title:     article.Title,
		Timestamp: e.now(),
	}
	if cfg.Selection != "" {
		ctx.Selection = pagemark.TruncateSelection(cfg.Selection)
	}

	return &pagemark.Result{
		Text:        pagemark.RenderHeader(ctx) + "\n" + body,
		Context:     ctx,
		ContentHTML: article.Content,
	}, nil
}

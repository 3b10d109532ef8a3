// Package trafilatura provides an alternate extraction engine backed by
// go-trafilatura, useful for cross-checking the native pipeline.
package trafilatura

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark"
)

// Ensure Engine implements pagemark.Engine at compile time.
var _ pagemark.Engine = (*Engine)(nil)

// Engine wraps go-trafilatura as a pagemark.Engine.
type Engine struct {
	conv   pagemark.Converter
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates a trafilatura-backed engine. The converter produces the
// markdown body from the extracted content HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	body := ""
	if contentHTML != "" {
		body, err = e.conv.Convert(contentHTML)
		if err != nil {
			return nil, err
		}
		if !cfg.DisableBoundaryDetection {
			body = pagemark.NewBoilerplate(cfg.Keywords(), e.logger).Filter(body)
		}
	}

	ctx := pagemark.Context{
		URL:       cfg.SourceURL,
		Title:     result.Metadata.Title,
		Timestamp: e.now(),
	}
	if cfg.Selection != "" {
		ctx.Selection = pagemark.TruncateSelection(cfg.Selection)
	}

	return &pagemark.Result{
		Text:        pagemark.RenderHeader(ctx) + "\n" + body,
		Context:     ctx,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package goquery

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark"
)

// emergencyBodyCap bounds the emergency fallback excerpt.
const emergencyBodyCap = 10000

// Ensure Engine implements pagemark.Engine at compile time.
var _ pagemark.Engine = (*Engine)(nil)

// Engine runs the full extraction pipeline: candidate collection, scoring,
// noise classification, chunking, rendering, and boilerplate filtering.
// Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	layout Layout
	logger *slog.Logger
	noise  NoiseOptions
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLayout supplies rendered geometry for position scoring and
// geometry-based visibility checks.
func WithLayout(l Layout) Option {
	return func(e *Engine) { e.layout = l }
}

// WithLogger sets the logger for filter warnings and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithNoiseOptions overrides the noise classifier policy.
func WithNoiseOptions(opts NoiseOptions) Option {
	return func(e *Engine) { e.noise = opts }
}

// WithClock overrides the timestamp source. Useful for reproducible output.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the pipeline over one document snapshot. It fails softly:
// when no candidate clears the mode's confidence threshold it degrades
// through simplified, basic, and emergency fallback tiers instead of
// returning an error.
func (e *Engine) Extract(rawHTML string, cfg pagemark.Config) (*pagemark.Result, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "failed to parse HTML: %v", err)
	}

	ctx := e.buildContext(doc, cfg)
	hasArticleLD := !cfg.DisableSemanticAnalysis && hasArticleStructuredData(doc)

	candidates := e.collect(doc)
	for _, c := range candidates {
		e.scoreCandidate(c, cfg, hasArticleLD)
	}

	// Candidates above the noise threshold are dropped outright; they are
	// reconsidered only by the basic fallback tier.
	eligible := candidates
	if !cfg.DisableNoiseFiltering {
		eligible = eligible[:0:0]
		for _, c := range candidates {
			if c.scores.Noise <= cfg.NoiseLimit() {
				eligible = append(eligible, c)
			}
		}
	}

	// Ties break by discovery order: best is replaced only on a strictly
	// higher score.
	best := pickBest(eligible)

	switch {
	case best != nil && best.final >= cfg.MinScore():
		return e.assemble(best, ctx, cfg, ""), nil
	case best != nil:
		// Below the confidence threshold: keep the candidate but skip the
		// boilerplate post-filter.
		return e.assemble(best, ctx, cfg, pagemark.FallbackSimplified), nil
	}

	// Everything was filtered as noise: take the best of the raw ranking.
	if basic := pickBest(candidates); basic != nil {
		return e.assemble(basic, ctx, cfg, pagemark.FallbackBasic), nil
	}

	return e.emergency(doc, ctx), nil
}

func pickBest(candidates []*candidate) *candidate {
	var best *candidate
	for _, c := range candidates {
		if best == nil || c.final > best.final {
			best = c
		}
	}
	return best
}

// assemble chunks the winning subtree, renders it, and applies the
// boilerplate filter to the body unless boundary detection is off or the
// extraction already degraded to a fallback tier.
func (e *Engine) assemble(c *candidate, ctx pagemark.Context, cfg pagemark.Config, fallback string) *pagemark.Result {
	chunks := e.chunk(c.node)

	body := pagemark.RenderBody(chunks)
	if !cfg.DisableBoundaryDetection && fallback == "" {
		body = pagemark.NewBoilerplate(cfg.Keywords(), e.logger).Filter(body)
	}

	return &pagemark.Result{
		Text:        pagemark.RenderHeader(ctx) + "\n" + body,
		Chunks:      chunks,
		Context:     ctx,
		ContentHTML: renderHTML(c.node),
		Score:       c.final,
		Scores:      c.scores,
		Source:      c.source,
		Fallback:    fallback,
	}
}

// emergency returns a truncated excerpt of the body text when no candidate
// at all could be scored. An empty Text here means extraction failed.
func (e *Engine) emergency(doc *goquery.Document, ctx pagemark.Context) *pagemark.Result {
	w := walker{layout: e.layout}
	text := ""
	if body := doc.Find("body").First(); body.Length() > 0 {
		text = w.visibleText(body.Nodes[0])
	}
	if runes := []rune(text); len(runes) > emergencyBodyCap {
		text = string(runes[:emergencyBodyCap])
	}

	var chunks []pagemark.Chunk
	if text != "" {
		chunks = []pagemark.Chunk{{Type: pagemark.ChunkParagraph, Text: text}}
	}
	return &pagemark.Result{
		Text:     pagemark.RenderHeader(ctx) + "\n" + pagemark.RenderBody(chunks),
		Chunks:   chunks,
		Context:  ctx,
		Fallback: pagemark.FallbackEmergency,
	}
}

func renderHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

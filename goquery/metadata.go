package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark"
)

// buildContext captures the extraction metadata: title, breadcrumbs and the
// optional user selection excerpt.
func (e *Engine) buildContext(doc *goquery.Document, cfg pagemark.Config) pagemark.Context {
	ctx := pagemark.Context{
		URL:       cfg.SourceURL,
		Title:     documentTitle(doc),
		Timestamp: e.now(),
	}
	if cfg.Selection != "" {
		ctx.Selection = pagemark.TruncateSelection(cfg.Selection)
	}
	ctx.Breadcrumbs = topHeadings(doc, walker{layout: e.layout})
	return ctx
}

// documentTitle resolves the page title: <title>, then og:title, then the
// first h1.
func documentTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return pagemark.CleanInline(title)
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return pagemark.CleanInline(og)
		}
	}
	return pagemark.CleanInline(doc.Find("h1").First().Text())
}

// topHeadings returns the document's visible h1/h2 headings in document
// order.
func topHeadings(doc *goquery.Document, w walker) []pagemark.Heading {
	var headings []pagemark.Heading
	for _, root := range doc.Selection.Nodes {
		w.walk(root, func(n *html.Node) bool {
			if n.Data == "h1" || n.Data == "h2" {
				if text := pagemark.CleanInline(w.visibleText(n)); text != "" {
					headings = append(headings, pagemark.Heading{
						Level: int(n.Data[1] - '0'),
						Text:  text,
					})
				}
				return false
			}
			return true
		})
	}
	return headings
}

// hasArticleStructuredData reports whether the document declares an
// Article-type entity via JSON-LD. Invalid JSON-LD blocks are ignored
// silently; they simply don't award the bonus.
func hasArticleStructuredData(doc *goquery.Document) bool {
	found := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		if containsArticleType(data) {
			found = true
			return false
		}
		return true
	})
	return found
}

var articleTypes = map[string]bool{
	"Article":     true,
	"NewsArticle": true,
	"BlogPosting": true,
}

// containsArticleType searches decoded JSON-LD for an Article @type,
// descending into arrays and @graph containers.
func containsArticleType(data any) bool {
	switch v := data.(type) {
	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			if articleTypes[t] {
				return true
			}
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok && articleTypes[s] {
					return true
				}
			}
		}
		if graph, ok := v["@graph"]; ok {
			return containsArticleType(graph)
		}
	case []any:
		for _, item := range v {
			if containsArticleType(item) {
				return true
			}
		}
	}
	return false
}

// Package goquery implements the pagemark extraction pipeline on top of a
// parsed HTML tree: candidate collection, multi-signal scoring, noise
// classification, and semantic chunking.
package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// rejectedTags are never treated as content. A rejected element's entire
// subtree is skipped, not just the element itself.
var rejectedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"meta":     true,
	"link":     true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
}

// blockTags are the block-level elements that disqualify a container from
// being captured as a leaf paragraph.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"ul": true, "ol": true, "table": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// walker walks an HTML subtree in document (pre-)order, skipping rejected
// tags and hidden subtrees. It carries the optional layout used for
// geometry-based visibility checks.
type walker struct {
	layout Layout
}

// walk visits every visible element under n in pre-order. fn returns false
// to skip the element's subtree (used by the chunker once a node has been
// consumed as a chunk).
func (w walker) walk(n *html.Node, fn func(*html.Node) bool) {
	if n.Type == html.ElementNode {
		if rejectedTags[n.Data] || w.hidden(n) {
			return
		}
		if !fn(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.DocumentNode {
			w.walk(c, fn)
		}
	}
}

// hidden reports whether the element is invisible: hidden/aria-hidden
// attributes, inline display/visibility/opacity styles, or a zero-area
// bounding box when a layout is available.
func (w walker) hidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "hidden":
			return true
		case "aria-hidden":
			if attr.Val == "true" {
				return true
			}
		case "style":
			style := strings.ReplaceAll(strings.ToLower(attr.Val), " ", "")
			if strings.Contains(style, "display:none") ||
				strings.Contains(style, "visibility:hidden") ||
				strings.Contains(style, "opacity:0;") ||
				strings.HasSuffix(style, "opacity:0") {
				return true
			}
		}
	}
	if w.layout != nil {
		if box, ok := w.layout.Bounds(n); ok && (box.Width <= 0 || box.Height <= 0) {
			return true
		}
	}
	return false
}

// visibleText returns the whitespace-normalized text of the subtree,
// excluding rejected and hidden regions.
func (w walker) visibleText(n *html.Node) string {
	var b strings.Builder
	w.collectText(n, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func (w walker) collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	if n.Type == html.ElementNode && (rejectedTags[n.Data] || w.hidden(n)) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.collectText(c, b)
	}
}

// rawText returns the subtree's text with internal whitespace preserved,
// used for code blocks where newlines and indentation are significant.
func rawText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// linkStats returns the number of anchors and the total length of anchor
// text within the visible subtree.
func (w walker) linkStats(n *html.Node) (count int, textLen int) {
	w.walk(n, func(el *html.Node) bool {
		if el.Data == "a" {
			count++
			textLen += len(w.visibleText(el))
		}
		return true
	})
	return count, textLen
}

// countElements returns the number of visible descendant elements matching
// the tag set; a nil set counts every visible element.
func (w walker) countElements(n *html.Node, tags map[string]bool) int {
	count := 0
	w.walk(n, func(el *html.Node) bool {
		if el == n {
			return true
		}
		if tags == nil || tags[el.Data] {
			count++
		}
		return true
	})
	return count
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.Data] {
			return true
		}
	}
	return false
}

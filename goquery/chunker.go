package goquery

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/pagemark/pagemark"
)

// headingTag reports whether the tag is h1-h6 and returns its level.
func headingTag(tag string) (int, bool) {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0'), true
	}
	return 0, false
}

// chunker decomposes a content subtree into typed chunks in document order.
// It tracks the heading stack so each heading chunk carries its ancestor
// breadcrumb trail.
type chunker struct {
	w      walker
	chunks []pagemark.Chunk
	stack  []pagemark.Heading
}

// chunk decomposes the subtree rooted at n into an ordered chunk sequence.
func (e *Engine) chunk(n *html.Node) []pagemark.Chunk {
	c := &chunker{w: walker{layout: e.layout}}
	c.visit(n)
	return c.chunks
}

func (c *chunker) visit(n *html.Node) {
	if n.Type == html.ElementNode {
		if rejectedTags[n.Data] || c.w.hidden(n) {
			return
		}
		if c.dispatch(n) {
			return
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			c.visit(child)
		}
	}
}

// dispatch emits a chunk for the node if it maps to one. It returns true
// when the node's subtree has been consumed and must not be descended into,
// which is what prevents a container's text from being captured twice.
func (c *chunker) dispatch(n *html.Node) bool {
	if level, ok := headingTag(n.Data); ok {
		c.heading(n, level)
		return true
	}

	switch n.Data {
	case "pre":
		c.code(n)
		return true
	case "blockquote":
		if text := pagemark.CleanInline(c.w.visibleText(n)); text != "" {
			c.chunks = append(c.chunks, pagemark.Chunk{Type: pagemark.ChunkBlockquote, Text: text})
		}
		return true
	case "ul", "ol":
		c.list(n)
		return true
	case "table":
		c.table(n)
		return true
	case "p", "div", "section", "article":
		// Leaf-only rule: a container with block-level children is not a
		// paragraph; its structured children produce the chunks instead.
		if hasBlockChild(n) {
			return false
		}
		if text := pagemark.CleanInline(c.w.visibleText(n)); text != "" {
			c.chunks = append(c.chunks, pagemark.Chunk{Type: pagemark.ChunkParagraph, Text: text})
		}
		return true
	}

	return false
}

func (c *chunker) heading(n *html.Node, level int) {
	text := pagemark.CleanInline(c.w.visibleText(n))
	if text == "" {
		return
	}

	// Pop headings at or below this level; what remains is the ancestor
	// trail, already in document order.
	for len(c.stack) > 0 && c.stack[len(c.stack)-1].Level >= level {
		c.stack = c.stack[:len(c.stack)-1]
	}
	var breadcrumb []string
	for _, h := range c.stack {
		breadcrumb = append(breadcrumb, fmt.Sprintf("H%d:%s", h.Level, h.Text))
	}
	c.stack = append(c.stack, pagemark.Heading{Level: level, Text: text})

	c.chunks = append(c.chunks, pagemark.Chunk{
		Type:       pagemark.ChunkHeading,
		Level:      level,
		Text:       text,
		Breadcrumb: breadcrumb,
	})
}

var codeLangPrefixes = []string{"language-", "lang-"}

func (c *chunker) code(n *html.Node) {
	lang := ""
	code := n
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "code" {
			code = child
			break
		}
	}
	lang = detectLang(attrValue(code, "class"))
	if lang == "" && code != n {
		lang = detectLang(attrValue(n, "class"))
	}

	// Code keeps its internal whitespace; only trailing whitespace goes.
	text := strings.TrimRight(rawText(code), " \t\n")
	if text == "" {
		return
	}
	c.chunks = append(c.chunks, pagemark.Chunk{Type: pagemark.ChunkCode, Lang: lang, Code: text})
}

// detectLang extracts a language hint from a class attribute: an explicit
// language-xxx/lang-xxx class wins, else a lone single-word class is taken
// as a best-effort hint.
func detectLang(class string) string {
	fields := strings.Fields(class)
	for _, f := range fields {
		for _, prefix := range codeLangPrefixes {
			if rest, ok := strings.CutPrefix(f, prefix); ok && rest != "" {
				return rest
			}
		}
	}
	if len(fields) == 1 && !strings.ContainsAny(fields[0], ":-_") {
		return fields[0]
	}
	return ""
}

func (c *chunker) list(n *html.Node) {
	var items []string
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data != "li" {
			continue
		}
		if text := pagemark.CleanInline(c.itemText(child)); text != "" {
			items = append(items, text)
		}
	}
	if len(items) > 0 {
		c.chunks = append(c.chunks, pagemark.Chunk{
			Type:    pagemark.ChunkList,
			Ordered: n.Data == "ol",
			Items:   items,
		})
	}

	// itemText already captured everything else in the items, so only
	// nested lists remain to be chunked, each as its own list.
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.visitNestedLists(child)
	}
}

// visitNestedLists descends through a list item and visits the nested ul/ol
// elements it contains, stopping at each one so deeper nesting is handled by
// its own list call. Non-list content is skipped: it belongs to the parent
// item's text and must not chunk a second time.
func (c *chunker) visitNestedLists(n *html.Node) {
	if n.Type != html.ElementNode || rejectedTags[n.Data] || c.w.hidden(n) {
		return
	}
	if n.Data == "ul" || n.Data == "ol" {
		c.visit(n)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.visitNestedLists(child)
	}
}

// itemText collects a list item's own text, excluding nested lists so their
// content is not duplicated into the parent item.
func (c *chunker) itemText(li *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		if n.Type == html.ElementNode {
			if n.Data == "ul" || n.Data == "ol" || rejectedTags[n.Data] || c.w.hidden(n) {
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(li)
	return strings.Join(strings.Fields(b.String()), " ")
}

func (c *chunker) table(n *html.Node) {
	var rows [][]string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for cell := n.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
					cells = append(cells, pagemark.CleanInline(c.w.visibleText(cell)))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	if len(rows) == 0 {
		return
	}
	c.chunks = append(c.chunks, pagemark.Chunk{Type: pagemark.ChunkTable, Rows: rows})
}

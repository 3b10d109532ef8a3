package pagemark

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RenderHeader renders the metadata header block. The field names and the
// `---` delimiters are the stable wire format consumed downstream; do not
// rename them.
func RenderHeader(ctx Context) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("url: ")
	b.WriteString(ctx.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(ctx.Title)
	b.WriteString("\ntimestamp: ")
	b.WriteString(ctx.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString("\n")
	if ctx.Selection != "" {
		b.WriteString("selection_excerpt: ")
		b.WriteString(ctx.Selection)
		b.WriteString("\n")
	}
	if len(ctx.Breadcrumbs) > 0 {
		parts := make([]string, 0, len(ctx.Breadcrumbs))
		for _, h := range ctx.Breadcrumbs {
			parts = append(parts, strings.Repeat("#", h.Level)+" "+h.Text)
		}
		b.WriteString("breadcrumbs: ")
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// RenderBody renders chunks as markdown with exactly one blank line between
// chunks. The body normally goes through the boilerplate filter before being
// concatenated after the header.
func RenderBody(chunks []Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if s := renderChunk(c); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Render renders the full output text: header, blank line, body.
// Callers that filter boilerplate should render header and body separately.
func Render(chunks []Chunk, ctx Context) string {
	return RenderHeader(ctx) + "\n" + RenderBody(chunks)
}

func renderChunk(c Chunk) string {
	switch c.Type {
	case ChunkHeading:
		level := c.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " " + c.Text
	case ChunkParagraph:
		return c.Text
	case ChunkList:
		lines := make([]string, 0, len(c.Items))
		for i, item := range c.Items {
			if c.Ordered {
				lines = append(lines, strconv.Itoa(i+1)+". "+item)
			} else {
				lines = append(lines, "- "+item)
			}
		}
		return strings.Join(lines, "\n")
	case ChunkCode:
		return fmt.Sprintf("```%s\n%s\n```", c.Lang, strings.TrimRight(c.Code, "\n"))
	case ChunkBlockquote:
		lines := strings.Split(c.Text, "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")
	case ChunkTable:
		return renderTable(c.Rows)
	}
	return ""
}

func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderTableRow(rows[0]))
	if len(rows) > 1 {
		seps := make([]string, len(rows[0]))
		for i := range seps {
			seps[i] = "---"
		}
		lines = append(lines, renderTableRow(seps))
		for _, row := range rows[1:] {
			lines = append(lines, renderTableRow(row))
		}
	}
	return strings.Join(lines, "\n")
}

func renderTableRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

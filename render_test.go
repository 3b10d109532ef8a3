package pagemark_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pagemark/pagemark"
)

func TestRenderHeader(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	t.Run("minimal header has fixed field order", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderHeader(pagemark.Context{
			URL:       "https://example.com/post",
			Title:     "A Post",
			Timestamp: ts,
		})
		want := "---\n" +
			"url: https://example.com/post\n" +
			"title: A Post\n" +
			"timestamp: 2024-05-01T12:30:00Z\n" +
			"---\n"
		assert.Equal(t, want, got)
	})

	t.Run("selection and breadcrumbs are optional lines", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderHeader(pagemark.Context{
			URL:       "https://example.com/post",
			Title:     "A Post",
			Timestamp: ts,
			Selection: "the interesting part",
			Breadcrumbs: []pagemark.Heading{
				{Level: 1, Text: "A Post"},
				{Level: 2, Text: "Details"},
			},
		})
		want := "---\n" +
			"url: https://example.com/post\n" +
			"title: A Post\n" +
			"timestamp: 2024-05-01T12:30:00Z\n" +
			"selection_excerpt: the interesting part\n" +
			"breadcrumbs: # A Post | ## Details\n" +
			"---\n"
		assert.Equal(t, want, got)
	})

	t.Run("timestamp always renders in UTC", func(t *testing.T) {
		t.Parallel()
		loc := time.FixedZone("UTC+2", 2*3600)
		got := pagemark.RenderHeader(pagemark.Context{
			Timestamp: time.Date(2024, 5, 1, 14, 30, 0, 0, loc),
		})
		assert.Contains(t, got, "timestamp: 2024-05-01T12:30:00Z\n")
	})
}

func TestRenderBody(t *testing.T) {
	t.Parallel()

	t.Run("joins chunks with exactly one blank line", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderBody([]pagemark.Chunk{
			{Type: pagemark.ChunkHeading, Level: 2, Text: "Section"},
			{Type: pagemark.ChunkParagraph, Text: "First."},
			{Type: pagemark.ChunkParagraph, Text: "Second."},
		})
		assert.Equal(t, "## Section\n\nFirst.\n\nSecond.", got)
	})

	t.Run("renders unordered and ordered lists", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderBody([]pagemark.Chunk{
			{Type: pagemark.ChunkList, Items: []string{"a", "b"}},
			{Type: pagemark.ChunkList, Ordered: true, Items: []string{"x", "y"}},
		})
		assert.Equal(t, "- a\n- b\n\n1. x\n2. y", got)
	})

	t.Run("renders fenced code with language tag", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderBody([]pagemark.Chunk{
			{Type: pagemark.ChunkCode, Lang: "go", Code: "func main() {\n\tprintln(\"hi\")\n}\n"},
		})
		assert.Equal(t, "```go\nfunc main() {\n\tprintln(\"hi\")\n}\n```", got)
	})

	t.Run("renders blockquotes with a prefix per line", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderBody([]pagemark.Chunk{
			{Type: pagemark.ChunkBlockquote, Text: "first line\nsecond line"},
		})
		assert.Equal(t, "> first line\n> second line", got)
	})

	t.Run("renders tables with a separator row and escaped pipes", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderBody([]pagemark.Chunk{
			{Type: pagemark.ChunkTable, Rows: [][]string{
				{"Name", "Value"},
				{"a|b", "1"},
			}},
		})
		assert.Equal(t, "| Name | Value |\n| --- | --- |\n| a\\|b | 1 |", got)
	})

	t.Run("single-row table renders without separator", func(t *testing.T) {
		t.Parallel()
		got := pagemark.RenderBody([]pagemark.Chunk{
			{Type: pagemark.ChunkTable, Rows: [][]string{{"only", "row"}}},
		})
		assert.Equal(t, "| only | row |", got)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	got := pagemark.Render(
		[]pagemark.Chunk{{Type: pagemark.ChunkParagraph, Text: "Body."}},
		pagemark.Context{
			URL:       "https://example.com",
			Title:     "T",
			Timestamp: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	)
	want := "---\n" +
		"url: https://example.com\n" +
		"title: T\n" +
		"timestamp: 2024-05-01T00:00:00Z\n" +
		"---\n" +
		"\n" +
		"Body."
	assert.Equal(t, want, got)
}

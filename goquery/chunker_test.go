package goquery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/goquery"
)

// fillerProse pads test articles past the density-expansion threshold so the
// article element itself is the only candidate. It always appears as the
// final paragraph chunk.
var fillerProse = strings.TrimSpace(strings.Repeat(
	"The quick brown fox jumps over the lazy dog near the quiet river bank. ", 8))

// extractChunks runs a full extraction over an article wrapping the given
// body fragment and returns the resulting chunk sequence.
func extractChunks(t *testing.T, fragment string) []pagemark.Chunk {
	t.Helper()
	page := "<html><body><article>" + fragment + "<p>" + fillerProse + "</p></article></body></html>"
	result, err := goquery.NewEngine().Extract(page, pagemark.Config{})
	require.NoError(t, err)
	return result.Chunks
}

func TestChunking_HeadingBreadcrumbs(t *testing.T) {
	t.Parallel()

	chunks := extractChunks(t, `
<h1>Weather Patterns</h1>
<h2>Storms</h2>
<h3>Hurricanes</h3>
<h2>Droughts</h2>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkHeading, Level: 1, Text: "Weather Patterns"},
		{Type: pagemark.ChunkHeading, Level: 2, Text: "Storms", Breadcrumb: []string{"H1:Weather Patterns"}},
		{Type: pagemark.ChunkHeading, Level: 3, Text: "Hurricanes", Breadcrumb: []string{"H1:Weather Patterns", "H2:Storms"}},
		{Type: pagemark.ChunkHeading, Level: 2, Text: "Droughts", Breadcrumb: []string{"H1:Weather Patterns"}},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

func TestChunking_LeafParagraphsOnly(t *testing.T) {
	t.Parallel()

	// A wrapper with block children is not a paragraph itself; only its
	// leaf descendants produce chunks, so no text is captured twice.
	chunks := extractChunks(t, `<div class="wrapper"><p>Inner paragraph text.</p></div>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkParagraph, Text: "Inner paragraph text."},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

func TestChunking_NestedLists(t *testing.T) {
	t.Parallel()

	chunks := extractChunks(t, `
<ul>
<li>Top one
<ul><li>Sub one</li><li>Sub two</li></ul>
</li>
<li>Top two</li>
</ul>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkList, Items: []string{"Top one", "Top two"}},
		{Type: pagemark.ChunkList, Items: []string{"Sub one", "Sub two"}},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

func TestChunking_ListItemBlockContent(t *testing.T) {
	t.Parallel()

	// Block elements inside a list item belong to the item's text; the walk
	// must not re-chunk them as standalone paragraphs afterwards.
	page := "<html><body><article>" +
		`<ul><li><p>unique item text</p></li><li><blockquote>quoted item</blockquote></li></ul>` +
		"<p>" + fillerProse + "</p></article></body></html>"
	result, err := goquery.NewEngine().Extract(page, pagemark.Config{})
	require.NoError(t, err)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkList, Items: []string{"unique item text", "quoted item"}},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, result.Chunks)
	require.Equal(t, 1, strings.Count(result.Text, "unique item text"))
}

func TestChunking_OrderedList(t *testing.T) {
	t.Parallel()

	chunks := extractChunks(t, `<ol><li>First</li><li>Second</li></ol>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkList, Ordered: true, Items: []string{"First", "Second"}},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

func TestChunking_CodeBlocks(t *testing.T) {
	t.Parallel()

	chunks := extractChunks(t, `
<pre><code class="language-go">func main() {
	println(42)
}
</code></pre>
<pre class="python"><code>print(42)</code></pre>
<pre>plain text block</pre>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkCode, Lang: "go", Code: "func main() {\n\tprintln(42)\n}"},
		{Type: pagemark.ChunkCode, Lang: "python", Code: "print(42)"},
		{Type: pagemark.ChunkCode, Code: "plain text block"},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

func TestChunking_Table(t *testing.T) {
	t.Parallel()

	chunks := extractChunks(t, `
<table>
<tr><th>Package</th><th>Purpose</th></tr>
<tr><td>fmt</td><td>formatted output</td></tr>
</table>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkTable, Rows: [][]string{
			{"Package", "Purpose"},
			{"fmt", "formatted output"},
		}},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

func TestChunking_Blockquote(t *testing.T) {
	t.Parallel()

	chunks := extractChunks(t, `<blockquote>Simplicity is
complicated.</blockquote>`)

	require.Equal(t, []pagemark.Chunk{
		{Type: pagemark.ChunkBlockquote, Text: "Simplicity is complicated."},
		{Type: pagemark.ChunkParagraph, Text: fillerProse},
	}, chunks)
}

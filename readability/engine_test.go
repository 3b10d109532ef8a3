package readability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/htmltomarkdown"
	"github.com/pagemark/pagemark/readability"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Why Interfaces Matter</title></head>
<body>
<nav><a href="/">Home</a> <a href="/blog">Blog</a></nav>
<article>
<h1>Why Interfaces Matter</h1>
<p>Interfaces in Go describe behavior rather than structure, which lets packages accept any value that knows how to do the job at hand.</p>
<p>A function that takes an io.Reader works the same whether the bytes come from a file, a network socket, or a buffer in memory during a test.</p>
<p>Small interfaces compose well because each one asks for exactly one capability, and implementations rarely need to import the package that defines them.</p>
<p>Returning concrete types while accepting interfaces keeps APIs flexible for callers without hiding useful methods behind an abstraction nobody asked for.</p>
<p>The habit of defining interfaces at the point of use, rather than next to the implementation, keeps dependencies pointed in the right direction.</p>
</article>
<footer>© 2024 Example</footer>
</body>
</html>`

func TestEngine_Extract(t *testing.T) {
	t.Parallel()

	engine := readability.NewEngine(htmltomarkdown.NewConverter(), nil)

	t.Run("extracts the article body", func(t *testing.T) {
		t.Parallel()
		result, err := engine.Extract(articlePage, pagemark.Config{SourceURL: "https://example.com/interfaces"})
		require.NoError(t, err)

		assert.Contains(t, result.Text, "url: https://example.com/interfaces\n")
		assert.Contains(t, result.Text, "Interfaces in Go describe behavior")
		assert.NotEmpty(t, result.ContentHTML)
		assert.Equal(t, "Why Interfaces Matter", result.Context.Title)
	})

	t.Run("empty input returns EINVALID", func(t *testing.T) {
		t.Parallel()
		_, err := engine.Extract("", pagemark.Config{})
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := engine.Extract(articlePage, pagemark.Config{Mode: "bogus"})
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}

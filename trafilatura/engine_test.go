package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/htmltomarkdown"
	"github.com/pagemark/pagemark/trafilatura"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Profiling Go Programs</title></head>
<body>
<nav><a href="/">Home</a> <a href="/blog">Blog</a></nav>
<article>
<h1>Profiling Go Programs</h1>
<p>The pprof tool shows where a program actually spends its time, which is usually somewhere other than where the author expected it to.</p>
<p>CPU profiles sample the call stack at a steady rate, so hot functions appear in proportion to the time the program spends inside them.</p>
<p>Heap profiles record allocation sites instead of call frequency, which makes them the right tool for tracking down memory growth over time.</p>
<p>Benchmarks and profiles complement each other because a benchmark says how fast the code is and a profile says why it is that fast or slow.</p>
<p>Reading a profile before optimizing protects you from speeding up code that was never on the critical path in the first place.</p>
</article>
<footer>© 2024 Example</footer>
</body>
</html>`

func TestEngine_Extract(t *testing.T) {
	t.Parallel()

	engine := trafilatura.NewEngine(htmltomarkdown.NewConverter(), nil)

	t.Run("extracts the article body", func(t *testing.T) {
		t.Parallel()
		result, err := engine.Extract(articlePage, pagemark.Config{SourceURL: "https://example.com/pprof"})
		require.NoError(t, err)

		assert.Contains(t, result.Text, "url: https://example.com/pprof\n")
		assert.Contains(t, result.Text, "pprof tool shows where a program actually spends its time")
	})

	t.Run("empty input returns EINVALID", func(t *testing.T) {
		t.Parallel()
		_, err := engine.Extract("   ", pagemark.Config{})
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

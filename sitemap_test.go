package pagemark_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()
		var f *pagemark.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("include patterns are ORed", func(t *testing.T) {
		t.Parallel()
		f := &pagemark.URLFilter{
			Include: []*regexp.Regexp{
				regexp.MustCompile(`/blog/`),
				regexp.MustCompile(`/news/`),
			},
		}
		assert.True(t, f.Match("https://example.com/blog/post"))
		assert.True(t, f.Match("https://example.com/news/item"))
		assert.False(t, f.Match("https://example.com/shop/item"))
	})

	t.Run("exclude wins over include", func(t *testing.T) {
		t.Parallel()
		f := &pagemark.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/blog/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/blog/drafts/`)},
		}
		assert.True(t, f.Match("https://example.com/blog/post"))
		assert.False(t, f.Match("https://example.com/blog/drafts/post"))
	})

	t.Run("empty include with exclude acts as a blocklist", func(t *testing.T) {
		t.Parallel()
		f := &pagemark.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`\.pdf$`)},
		}
		assert.True(t, f.Match("https://example.com/page"))
		assert.False(t, f.Match("https://example.com/file.pdf"))
	})
}

func TestParseURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("compiles include patterns", func(t *testing.T) {
		t.Parallel()
		f, err := pagemark.ParseURLFilter("/docs/\n/api/")
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.True(t, f.Match("https://example.com/docs/intro"))
		assert.False(t, f.Match("https://example.com/blog/post"))
	})

	t.Run("empty input yields nil filter", func(t *testing.T) {
		t.Parallel()
		f, err := pagemark.ParseURLFilter("\n\n")
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("invalid pattern returns EINVALID", func(t *testing.T) {
		t.Parallel()
		_, err := pagemark.ParseURLFilter("([unclosed")
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}

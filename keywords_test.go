package pagemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
)

func TestDefaultFilterKeywords(t *testing.T) {
	t.Parallel()

	t.Run("covers the major boilerplate families", func(t *testing.T) {
		t.Parallel()
		keywords := pagemark.DefaultFilterKeywords()
		assert.Contains(t, keywords, "related articles")
		assert.Contains(t, keywords, "share this article")
		assert.Contains(t, keywords, "comments")
		assert.Contains(t, keywords, "about the author")
		assert.Contains(t, keywords, "tags")
		assert.Contains(t, keywords, "advertisement")
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		a := pagemark.DefaultFilterKeywords()
		a[0] = "mutated"
		b := pagemark.DefaultFilterKeywords()
		assert.NotEqual(t, "mutated", b[0])
	})
}

func TestParseFilterKeywords(t *testing.T) {
	t.Parallel()

	t.Run("parses newline-delimited keywords", func(t *testing.T) {
		t.Parallel()
		got := pagemark.ParseFilterKeywords("sponsored\nads by\n")
		assert.Equal(t, []string{"sponsored", "ads by"}, got)
	})

	t.Run("skips blank lines and comments", func(t *testing.T) {
		t.Parallel()
		got := pagemark.ParseFilterKeywords("# rails\nrelated\n\n  \n# ctas\nsubscribe")
		assert.Equal(t, []string{"related", "subscribe"}, got)
	})

	t.Run("falls back to defaults when nothing remains", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, pagemark.DefaultFilterKeywords(), pagemark.ParseFilterKeywords(""))
		require.Equal(t, pagemark.DefaultFilterKeywords(), pagemark.ParseFilterKeywords("# only comments\n\n"))
	})
}

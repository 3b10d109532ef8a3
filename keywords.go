package pagemark

import "strings"

// defaultFilterKeywords is the built-in boilerplate keyword set, grouped by
// the kind of section each keyword tends to introduce. Matching is
// case-insensitive and anchored to line starts by the boilerplate filter.
var defaultFilterKeywords = []string{
	// Recommendation rails.
	"related articles",
	"related posts",
	"related stories",
	"recommended for you",
	"you may also like",
	"you might also like",
	"more from",
	"read next",
	"read more",
	"trending now",
	"trending",
	"most popular",
	"popular posts",
	"editor's picks",
	"top stories",

	// Social and newsletter CTAs.
	"share this article",
	"share this post",
	"share on",
	"follow us",
	"subscribe to our newsletter",
	"subscribe now",
	"sign up for our newsletter",
	"sign up for",
	"join our newsletter",
	"get the newsletter",

	// Comment sections.
	"comments",
	"leave a reply",
	"leave a comment",
	"join the discussion",

	// Author bios.
	"about the author",
	"author bio",

	// Tags and categories.
	"tags",
	"tagged with",
	"categories",
	"filed under",

	// Legal and footer.
	"advertisement",
	"sponsored content",
	"disclaimer",
	"privacy policy",
	"terms of use",
}

// DefaultFilterKeywords returns a copy of the built-in boilerplate keyword
// list, e.g. for display in a settings UI.
func DefaultFilterKeywords() []string {
	out := make([]string, len(defaultFilterKeywords))
	copy(out, defaultFilterKeywords)
	return out
}

// ParseFilterKeywords parses a newline-delimited keyword list. Blank lines
// and lines starting with '#' are skipped. If no usable keywords remain,
// the built-in default set is returned.
func ParseFilterKeywords(s string) []string {
	var keywords []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if len(keywords) == 0 {
		return DefaultFilterKeywords()
	}
	return keywords
}

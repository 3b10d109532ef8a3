package pagemark

import (
	"regexp"
	"strings"
)

var (
	manyNewlinesRe = regexp.MustCompile(`\n{3,}`)
	trailingWSRe   = regexp.MustCompile(`(?m)[ \t]+$`)
	spaceRunRe     = regexp.MustCompile(` {2,}`)
)

// CleanInline normalizes inline text extracted from a document: carriage
// returns are stripped, tabs and non-breaking spaces become regular spaces,
// runs of blank lines collapse to one blank line, trailing whitespace is
// stripped per line, and space runs collapse to a single space.
//
// Code blocks must not go through CleanInline; their internal whitespace
// is significant.
func CleanInline(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = manyNewlinesRe.ReplaceAllString(s, "\n\n")
	s = trailingWSRe.ReplaceAllString(s, "")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MaxSelectionLen is the maximum length of a user-selection excerpt carried
// in the extraction context.
const MaxSelectionLen = 300

// TruncateSelection normalizes a user text selection and truncates it to
// MaxSelectionLen runes, appending an ellipsis when truncated.
func TruncateSelection(s string) string {
	s = CleanInline(s)
	runes := []rune(s)
	if len(runes) <= MaxSelectionLen {
		return s
	}
	return string(runes[:MaxSelectionLen]) + "..."
}

package pagemark

import (
	"log/slog"
	"regexp"
	"strings"
)

// maxSweepPasses bounds the orphan-heading fixed-point loop so adversarial
// input cannot keep the sweep running.
const maxSweepPasses = 10

var (
	// linkListRe matches standalone runs of 3+ consecutive markdown
	// link-list lines (`- [text](url)`).
	linkListRe = regexp.MustCompile(`(?m)(?:^- \[[^\]]*\]\([^)]*\)[ \t]*\n?){3,}`)

	// legalFooterRe matches a legal/footer block that runs to end-of-text.
	legalFooterRe = regexp.MustCompile(`(?is)\n(?:#{1,6}[ \t]*|\*\*)?(?:disclaimer\b|copyright\b|all rights reserved|privacy policy|terms of use|©\s*\d{4}).*$`)

	// orphanHeadingRe matches h2-h4 headings whose text starts with a
	// recommendation keyword. Such headings are removed when their section
	// body is empty (next non-blank line is another heading or end-of-text).
	// The trailing \b keeps the keywords from matching as bare prefixes, so
	// "Shareholder" is not swept by "share".
	orphanHeadingRe = regexp.MustCompile(`(?i)^#{2,4}[ \t]+(?:related|recommended|trending|popular|more from|you may also like|you might also like|read next|read more|top stories|editor'?s picks|share|follow|subscribe|newsletter|sign up|comments|tags|categories|sponsored|advertisement)\b`)

	blankLineRunRe = regexp.MustCompile(`\n[ \t]+\n`)
)

// Boilerplate strips residual boilerplate sections from rendered markdown.
// It is a pattern-driven second pass over the text, catching blocks that
// survived structural chunking because they looked like ordinary paragraphs
// or headings.
type Boilerplate struct {
	keywords []string
	logger   *slog.Logger
}

// NewBoilerplate creates a Boilerplate filter. An empty keyword list falls
// back to the built-in defaults. A nil logger discards warnings.
func NewBoilerplate(keywords []string, logger *slog.Logger) *Boilerplate {
	if len(keywords) == 0 {
		keywords = DefaultFilterKeywords()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Boilerplate{keywords: keywords, logger: logger}
}

// Filter removes boilerplate sections from markdown and returns the
// normalized result. A keyword that fails to compile into a section pattern
// is skipped with a warning; one bad rule never aborts the pass.
func (b *Boilerplate) Filter(markdown string) string {
	s := markdown

	for _, kw := range b.keywords {
		re, err := sectionPattern(kw)
		if err != nil {
			b.logger.Warn("skipping malformed filter rule", "keyword", kw, "error", err)
			continue
		}
		// Collapse to a blank line but keep the section boundary so the
		// following section stays intact.
		s = re.ReplaceAllString(s, "\n\n${1}")
	}

	s = linkListRe.ReplaceAllString(s, "")
	s = legalFooterRe.ReplaceAllString(s, "")
	s = b.sweepOrphanHeadings(s)

	return normalizeFiltered(s)
}

// sectionPattern builds the removal regex for one keyword: the keyword at a
// line start (optionally behind heading or bold markup), the rest of its
// line, then everything up to the next section boundary. Boundaries are
// anchored at h1/h2 headings, horizontal rules, or end-of-text only, so
// removing an h2 section also removes its nested h3/h4 subsections.
func sectionPattern(keyword string) (*regexp.Regexp, error) {
	pattern := `(?is)(?:^|\n{1,2})(?:#{1,4}[ \t]*|\*\*)?` +
		regexp.QuoteMeta(keyword) +
		`[^\n]*:?(?:\n.*?)?(\n#{1,2}[ \t]|\n-{3,}[ \t]*(?:\n|$)|$)`
	return regexp.Compile(pattern)
}

// sweepOrphanHeadings removes recommendation headings whose body was emptied
// by earlier passes. Removing one heading can expose a newly-orphaned
// ancestor heading, so the sweep repeats to a fixed point, bounded by
// maxSweepPasses.
func (b *Boilerplate) sweepOrphanHeadings(s string) string {
	lines := strings.Split(s, "\n")
	for pass := 0; pass < maxSweepPasses; pass++ {
		changed := false
		out := lines[:0:0]
		for i := 0; i < len(lines); i++ {
			line := lines[i]
			if orphanHeadingRe.MatchString(line) {
				next := i + 1
				for next < len(lines) && strings.TrimSpace(lines[next]) == "" {
					next++
				}
				if next >= len(lines) || strings.HasPrefix(strings.TrimSpace(lines[next]), "#") {
					changed = true
					continue
				}
			}
			out = append(out, line)
		}
		lines = out
		if !changed {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// normalizeFiltered collapses the newline debris left behind by the removal
// passes and guarantees a single trailing newline.
func normalizeFiltered(s string) string {
	s = blankLineRunRe.ReplaceAllString(s, "\n\n")
	s = manyNewlinesRe.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return s + "\n"
}

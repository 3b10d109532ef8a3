package pagemark

import (
	"context"
	"regexp"
	"strings"
)

// URLFilter restricts which URLs a sitemap discovery returns.
// A URL matches when it matches at least one Include pattern (or Include is
// empty) and matches no Exclude pattern.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil filter matches
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// ParseURLFilter compiles newline-delimited include patterns into a URLFilter.
// Blank lines are skipped. Returns nil when no patterns remain.
func ParseURLFilter(patterns string) (*URLFilter, error) {
	var filter URLFilter
	for _, line := range strings.Split(patterns, "\n") {
		if line == "" {
			continue
		}
		re, err := regexp.Compile(line)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid filter pattern %q: %v", line, err)
		}
		filter.Include = append(filter.Include, re)
	}
	if len(filter.Include) == 0 {
		return nil, nil
	}
	return &filter, nil
}

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs reachable from the site's sitemaps,
	// filtered to the base URL's path prefix and the optional filter.
	// Returns an empty slice (not nil) when no sitemaps exist.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

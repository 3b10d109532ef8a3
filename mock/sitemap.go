package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pagemark.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pagemark.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pagemark.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

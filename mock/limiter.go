package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagemark.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}

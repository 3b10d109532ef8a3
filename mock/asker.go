package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.Asker = (*Asker)(nil)

// Asker is a mock implementation of pagemark.Asker.
type Asker struct {
	AskFn func(ctx context.Context, document, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, document, question string) (string, error) {
	return a.AskFn(ctx, document, question)
}

package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of pagemark.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, extraction *pagemark.Extraction) (string, error)
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, extraction *pagemark.Extraction) (string, error) {
	return w.WriteExtractionFn(ctx, extraction)
}

package pagemark

import "context"

// Asker answers natural language questions about an extracted document.
type Asker interface {
	// Ask answers a question using the extracted markdown as context.
	Ask(ctx context.Context, document string, question string) (string, error)
}

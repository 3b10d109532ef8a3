package pagemark

import (
	"context"
	"time"
)

// Extraction is a persisted extraction result.
type Extraction struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Score       float64   `json:"score"`
	Engine      string    `json:"engine"`
	Mode        string    `json:"mode"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	if e.Content == "" {
		return Errorf(EINVALID, "extraction content required")
	}
	return nil
}

// ExtractionService represents a service for managing saved extractions.
type ExtractionService interface {
	// CreateExtraction persists a new extraction.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionWriter writes an extraction to an external sink, such as a
// markdown file tree.
type ExtractionWriter interface {
	// WriteExtraction writes the extraction and returns the destination path.
	WriteExtraction(ctx context.Context, extraction *Extraction) (string, error)
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

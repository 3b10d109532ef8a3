package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/pagemark/pagemark"
)

// Compile-time interface verification.
var _ pagemark.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements pagemark.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// HashContent computes the xxHash of content and returns it as a hex string.
// The same hash keys bloom-filter dedup in batch runs, so an extraction can
// be recognized as unchanged across runs.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// CreateExtraction persists a new extraction. The ID, content hash and
// extraction time are assigned here.
func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *pagemark.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	extraction.ID = uuid.New().String()
	extraction.ExtractedAt = time.Now().UTC()
	extraction.ContentHash = HashContent(extraction.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source_url, title, content, content_hash, score, engine, mode, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.SourceURL, extraction.Title, extraction.Content, extraction.ContentHash,
		extraction.Score, extraction.Engine, extraction.Mode, extraction.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*pagemark.Extraction, error) {
	var extraction pagemark.Extraction
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, score, engine, mode, extracted_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&extraction.ID, &extraction.SourceURL, &extraction.Title, &extraction.Content,
		&extraction.ContentHash, &extraction.Score, &extraction.Engine, &extraction.Mode, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	extraction.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &extraction, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter pagemark.ExtractionFilter) ([]*pagemark.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, score, engine, mode, extracted_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY extracted_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*pagemark.Extraction
	for rows.Next() {
		var extraction pagemark.Extraction
		var extractedAt string

		if err := rows.Scan(&extraction.ID, &extraction.SourceURL, &extraction.Title, &extraction.Content,
			&extraction.ContentHash, &extraction.Score, &extraction.Engine, &extraction.Mode, &extractedAt); err != nil {
			return nil, err
		}

		extraction.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
		if err != nil {
			return nil, err
		}

		extractions = append(extractions, &extraction)
	}

	return extractions, rows.Err()
}

// parseRFC3339 parses an RFC3339 timestamp column.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if the values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagemark.Errorf(pagemark.ENOTFOUND, "extraction not found")
	}

	return nil
}

package pagemark

// ChunkType identifies the variant of a content chunk.
type ChunkType string

// Chunk type constants.
const (
	ChunkHeading    ChunkType = "heading"
	ChunkParagraph  ChunkType = "paragraph"
	ChunkList       ChunkType = "list"
	ChunkCode       ChunkType = "code"
	ChunkBlockquote ChunkType = "blockquote"
	ChunkTable      ChunkType = "table"
)

// Chunk is one typed, ordered unit of extracted content. It is a tagged
// union: Type selects the variant and only that variant's fields are set.
// Chunks preserve document order and their text is whitespace-normalized;
// code chunks keep internal whitespace intact.
type Chunk struct {
	Type ChunkType `json:"type"`

	// Heading fields.
	Level      int      `json:"level,omitempty"`
	Breadcrumb []string `json:"breadcrumb,omitempty"`

	// Text is set for heading, paragraph and blockquote chunks.
	Text string `json:"text,omitempty"`

	// List fields.
	Ordered bool     `json:"ordered,omitempty"`
	Items   []string `json:"items,omitempty"`

	// Code fields.
	Lang string `json:"lang,omitempty"`
	Code string `json:"code,omitempty"`

	// Table fields.
	Rows [][]string `json:"rows,omitempty"`
}

// Validate returns an error if the chunk's variant fields are inconsistent.
func (c *Chunk) Validate() error {
	switch c.Type {
	case ChunkHeading:
		if c.Level < 1 || c.Level > 6 {
			return Errorf(EINVALID, "heading level must be 1-6, got %d", c.Level)
		}
		if c.Text == "" {
			return Errorf(EINVALID, "heading text required")
		}
	case ChunkParagraph, ChunkBlockquote:
		if c.Text == "" {
			return Errorf(EINVALID, "%s text required", c.Type)
		}
	case ChunkList:
		if len(c.Items) == 0 {
			return Errorf(EINVALID, "list items required")
		}
	case ChunkCode:
		if c.Code == "" {
			return Errorf(EINVALID, "code content required")
		}
	case ChunkTable:
		if len(c.Rows) == 0 {
			return Errorf(EINVALID, "table rows required")
		}
	default:
		return Errorf(EINVALID, "unknown chunk type %q", c.Type)
	}
	return nil
}

package pagemark

// Fallback tiers reported in Result.Fallback when the primary pipeline could
// not produce a confident extraction.
const (
	// FallbackSimplified re-ranks without the boilerplate post-filter.
	FallbackSimplified = "simplified"

	// FallbackBasic takes the first candidate using semantic and noise
	// signals only, without the minimum-score gate.
	FallbackBasic = "basic"

	// FallbackEmergency returns a truncated excerpt of the document body.
	FallbackEmergency = "emergency"
)

// Result holds the outcome of one extraction.
type Result struct {
	// Text is the rendered output: metadata header block followed by the
	// filtered markdown body.
	Text string `json:"text"`

	// Chunks are the typed content units in document order.
	Chunks []Chunk `json:"chunks"`

	// Context is the metadata captured for this extraction.
	Context Context `json:"context"`

	// ContentHTML is the winning candidate's subtree as HTML, for
	// converter-based engines and debugging.
	ContentHTML string `json:"contentHtml,omitempty"`

	// Score is the winning candidate's final content score.
	Score float64 `json:"score"`

	// Scores are the winning candidate's sub-scores, for telemetry.
	Scores Scores `json:"scores"`

	// Source reports which heuristic proposed the winning candidate.
	Source CandidateSource `json:"source,omitempty"`

	// Fallback is empty for a confident extraction, otherwise one of the
	// Fallback* constants.
	Fallback string `json:"fallback,omitempty"`
}

// Engine extracts main content from an HTML document.
type Engine interface {
	// Extract runs the extraction pipeline over one document snapshot.
	// It fails softly: a document without identifiable content yields a
	// best-effort fallback result, not an error. An error is returned only
	// for invalid input or config.
	Extract(html string, cfg Config) (*Result, error)
}

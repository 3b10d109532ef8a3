package pagemark

import "time"

// Heading is one entry in the document's top-level heading outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Context is the metadata captured once per extraction. It is immutable
// once built.
type Context struct {
	// URL of the source document.
	URL string `json:"url"`

	// Title of the source document.
	Title string `json:"title"`

	// Timestamp records when the extraction ran.
	Timestamp time.Time `json:"timestamp"`

	// Selection is the user's active text selection at extraction time,
	// truncated to MaxSelectionLen. Empty when there was no selection.
	Selection string `json:"selection,omitempty"`

	// Breadcrumbs lists the document's h1/h2 headings in document order.
	Breadcrumbs []Heading `json:"breadcrumbs,omitempty"`
}

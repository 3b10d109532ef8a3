package pagemark

// Converter converts HTML to Markdown. It is used by engines that delegate
// content identification to an external extractor and only need the cleaned
// HTML serialized.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

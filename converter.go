package mdharvest

// Converter converts article body HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a content region (e.g., from an Extractor).
	Convert(html string) (string, error)
}

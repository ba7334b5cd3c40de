package docent

// Converter turns HTML into Markdown so uploaded web pages reach the
// knowledge service as readable text.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

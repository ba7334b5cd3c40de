// Package readability extracts article content from uploaded HTML pages.
package readability

import (
	"bytes"
	"context"

	"github.com/fwojciec/docent"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docent.Extractor at compile time.
var _ docent.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability. It recovers article text from pages
// where main-content detection finds nothing, typically short ones.
type Extractor struct {
	conv docent.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor(conv docent.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Extract returns the article content as Markdown.
func (e *Extractor) Extract(_ context.Context, file *docent.File) (string, error) {
	if file == nil {
		return "", docent.Errorf(docent.EINVALID, "file required")
	}
	if len(bytes.TrimSpace(file.Data)) == 0 {
		return "", nil
	}

	article, err := readability.FromReader(bytes.NewReader(file.Data), nil)
	if err != nil {
		return "", docent.Errorf(docent.EINTERNAL, "failed to extract %s: %v", file.Name, err)
	}

	return e.conv.Convert(article.Content)
}

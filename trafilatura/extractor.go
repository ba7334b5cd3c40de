// Package trafilatura extracts the main content of uploaded HTML pages.
package trafilatura

import (
	"bytes"
	"context"

	"github.com/fwojciec/docent"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Extensions lists the file types the Extractor understands.
var Extensions = []string{".html", ".htm"}

// Ensure Extractor implements docent.Extractor at compile time.
var _ docent.Extractor = (*Extractor)(nil)

// Extractor strips page boilerplate with go-trafilatura and renders the
// remaining content as Markdown.
type Extractor struct {
	conv docent.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor(conv docent.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Extract returns the page title and main content as Markdown.
// Pages without main content yield empty text.
func (e *Extractor) Extract(_ context.Context, file *docent.File) (string, error) {
	if file == nil {
		return "", docent.Errorf(docent.EINVALID, "file required")
	}
	if len(bytes.TrimSpace(file.Data)) == 0 {
		return "", nil
	}

	result, err := trafilatura.Extract(bytes.NewReader(file.Data), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return "", docent.Errorf(docent.EINTERNAL, "failed to extract %s: %v", file.Name, err)
	}
	if result == nil || result.ContentNode == nil {
		return "", nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", err
	}

	md, err := e.conv.Convert(contentHTML)
	if err != nil {
		return "", err
	}
	if md == "" {
		return "", nil
	}
	if title := result.Metadata.Title; title != "" {
		md = "# " + title + "\n\n" + md
	}
	return md, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package docent

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// File is a document uploaded by the user.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Ext returns the lower-cased file extension including the leading dot.
func (f *File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Extractor converts an uploaded document into plain text.
type Extractor interface {
	// Extract returns the text found in the file.
	// A document without readable text is not an error: the returned text
	// is empty and err is nil. Errors are reserved for documents that could
	// not be processed or a service that could not be reached.
	Extract(ctx context.Context, file *File) (string, error)
}

// Ensure TextExtractor implements Extractor at compile time.
var _ Extractor = (*TextExtractor)(nil)

// TextExtractor treats the file as UTF-8 text.
// Invalid byte sequences are replaced with U+FFFD.
type TextExtractor struct{}

// Extract returns the file contents as a string.
func (TextExtractor) Extract(ctx context.Context, file *File) (string, error) {
	if file == nil {
		return "", Errorf(EINVALID, "file required")
	}
	if utf8.Valid(file.Data) {
		return string(file.Data), nil
	}
	return strings.ToValidUTF8(string(file.Data), "�"), nil
}

// Ensure ExtractorMux implements Extractor at compile time.
var _ Extractor = (*ExtractorMux)(nil)

// ExtractorMux routes files to extractors by extension.
// Files with an unregistered extension go to the fallback.
type ExtractorMux struct {
	byExt    map[string]Extractor
	fallback Extractor
}

// NewExtractorMux creates a new ExtractorMux with the given fallback.
// A nil fallback means TextExtractor.
func NewExtractorMux(fallback Extractor) *ExtractorMux {
	if fallback == nil {
		fallback = TextExtractor{}
	}
	return &ExtractorMux{
		byExt:    make(map[string]Extractor),
		fallback: fallback,
	}
}

// Register routes the given extensions (e.g. ".pdf") to the extractor.
func (m *ExtractorMux) Register(extractor Extractor, exts ...string) {
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m.byExt[ext] = extractor
	}
}

// Extract delegates to the extractor registered for the file's extension.
func (m *ExtractorMux) Extract(ctx context.Context, file *File) (string, error) {
	if file == nil {
		return "", Errorf(EINVALID, "file required")
	}
	if e, ok := m.byExt[file.Ext()]; ok {
		return e.Extract(ctx, file)
	}
	return m.fallback.Extract(ctx, file)
}

// Ensure ExtractorChain implements Extractor at compile time.
var _ Extractor = ExtractorChain(nil)

// ExtractorChain tries each extractor in turn and returns the first
// non-blank text. An error stops the chain.
type ExtractorChain []Extractor

// Extract returns the first non-blank text produced by the chain.
func (c ExtractorChain) Extract(ctx context.Context, file *File) (string, error) {
	for _, e := range c {
		text, err := e.Extract(ctx, file)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return "", nil
}

// Package pdf extracts text from PDF uploads.
package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/fwojciec/docent"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements docent.Extractor at compile time.
var _ docent.Extractor = (*Extractor)(nil)

// Extractor reads the text layer of a PDF.
// Scanned documents without a text layer yield empty text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text of every page.
func (e *Extractor) Extract(_ context.Context, file *docent.File) (text string, err error) {
	if file == nil {
		return "", docent.Errorf(docent.EINVALID, "file required")
	}
	if len(file.Data) == 0 {
		return "", nil
	}

	// The reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", docent.Errorf(docent.EINVALID, "failed to read %s: malformed pdf", file.Name)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return "", docent.Errorf(docent.EINVALID, "failed to read %s: %v", file.Name, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", docent.Errorf(docent.EINVALID, "failed to read %s: %v", file.Name, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", docent.Errorf(docent.EINTERNAL, "failed to read %s: %v", file.Name, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

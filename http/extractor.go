package http

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/fwojciec/docent"
)

// Ensure Client implements docent.Extractor at compile time.
var _ docent.Extractor = (*Client)(nil)

// noTextError is how the service reports a document without readable text.
const noTextError = "No text could be extracted"

type uploadResponse struct {
	ExtractedText string `json:"extracted_text"`
	Filename      string `json:"filename"`
	Message       string `json:"message"`
	Error         string `json:"error"`
}

// Extract uploads the file and returns the text the service extracted.
// The service also indexes the document so later questions can cite it.
func (c *Client) Extract(ctx context.Context, file *docent.File) (string, error) {
	if file == nil || file.Name == "" {
		return "", docent.Errorf(docent.EINVALID, "file name required")
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var resp uploadResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return "", err
	}

	switch resp.Error {
	case "":
		return resp.ExtractedText, nil
	case noTextError:
		return "", nil
	default:
		return "", docent.Errorf(docent.EINTERNAL, "extraction failed: %s", resp.Error)
	}
}

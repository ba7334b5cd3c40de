package gemini

import (
	"context"
	"net/http"

	"github.com/fwojciec/docent"
	"google.golang.org/genai"
)

// ImageExtensions lists the image types the Extractor understands.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".heic"}

const extractPrompt = "Extract all text from this image and provide a detailed technical description of what is visible."

// Ensure Extractor implements docent.Extractor at compile time.
var _ docent.Extractor = (*Extractor)(nil)

// Extractor reads text from images with Gemini vision.
type Extractor struct {
	client *genai.Client
	model  string
}

// NewExtractor creates a new Extractor. An empty model means DefaultModel.
func NewExtractor(client *genai.Client, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, model: model}
}

// Extract transcribes and describes the image.
func (e *Extractor) Extract(ctx context.Context, file *docent.File) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", nil
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(extractPrompt),
			genai.NewPartFromBytes(file.Data, ImageMIMEType(file)),
		}, genai.RoleUser),
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docent.Errorf(docent.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// ImageMIMEType returns the file's content type, sniffing it when unset.
func ImageMIMEType(file *docent.File) string {
	if file.ContentType != "" {
		return file.ContentType
	}
	if file.Ext() == ".heic" {
		return "image/heic"
	}
	return http.DetectContentType(file.Data)
}

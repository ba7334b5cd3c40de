package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_EmptyImageHasNoText(t *testing.T) {
	t.Parallel()

	extractor := gemini.NewExtractor(nil, "") // nil client ok for this test

	text, err := extractor.Extract(context.Background(), &docent.File{Name: "blank.png"})

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestImageMIMEType(t *testing.T) {
	t.Parallel()

	t.Run("prefers declared content type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "image/webp", gemini.ImageMIMEType(&docent.File{Name: "a.webp", ContentType: "image/webp"}))
	})

	t.Run("sniffs png", func(t *testing.T) {
		t.Parallel()

		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

		assert.Equal(t, "image/png", gemini.ImageMIMEType(&docent.File{Name: "a.png", Data: png}))
	})

	t.Run("maps heic by extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "image/heic", gemini.ImageMIMEType(&docent.File{Name: "photo.HEIC", Data: []byte{0, 1, 2}}))
	})
}

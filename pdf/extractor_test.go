package pdf_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("empty file yields empty text", func(t *testing.T) {
		t.Parallel()

		text, err := pdf.NewExtractor().Extract(context.Background(), &docent.File{Name: "empty.pdf"})

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("rejects data that is not a pdf", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewExtractor().Extract(context.Background(), &docent.File{
			Name: "notes.pdf",
			Data: []byte("just some plain text pretending to be a pdf"),
		})

		require.Error(t, err)
		assert.Equal(t, docent.EINVALID, docent.ErrorCode(err))
		assert.Contains(t, docent.ErrorMessage(err), "notes.pdf")
	})

	t.Run("rejects nil file", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewExtractor().Extract(context.Background(), nil)

		assert.Equal(t, docent.EINVALID, docent.ErrorCode(err))
	})
}

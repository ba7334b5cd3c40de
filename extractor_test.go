package docent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns utf-8 content", func(t *testing.T) {
		t.Parallel()

		text, err := docent.TextExtractor{}.Extract(context.Background(), &docent.File{Name: "a.md", Data: []byte("# Title")})

		require.NoError(t, err)
		assert.Equal(t, "# Title", text)
	})

	t.Run("returns empty text for empty file", func(t *testing.T) {
		t.Parallel()

		text, err := docent.TextExtractor{}.Extract(context.Background(), &docent.File{Name: "a.txt"})

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("replaces invalid sequences", func(t *testing.T) {
		t.Parallel()

		text, err := docent.TextExtractor{}.Extract(context.Background(), &docent.File{Name: "a.bin", Data: []byte{'o', 'k', 0xff}})

		require.NoError(t, err)
		assert.Equal(t, "ok�", text)
	})
}

func TestExtractorMux_Extract(t *testing.T) {
	t.Parallel()

	t.Run("routes by extension case-insensitively", func(t *testing.T) {
		t.Parallel()

		pdf := &mock.Extractor{
			ExtractFn: func(_ context.Context, f *docent.File) (string, error) {
				return "pdf text from " + f.Name, nil
			},
		}
		mux := docent.NewExtractorMux(nil)
		mux.Register(pdf, "pdf")

		text, err := mux.Extract(context.Background(), &docent.File{Name: "Guide.PDF"})

		require.NoError(t, err)
		assert.Equal(t, "pdf text from Guide.PDF", text)
	})

	t.Run("falls back for unknown extension", func(t *testing.T) {
		t.Parallel()

		mux := docent.NewExtractorMux(nil)
		mux.Register(&mock.Extractor{}, ".pdf")

		text, err := mux.Extract(context.Background(), &docent.File{Name: "notes.txt", Data: []byte("hello")})

		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("rejects nil file", func(t *testing.T) {
		t.Parallel()

		_, err := docent.NewExtractorMux(nil).Extract(context.Background(), nil)

		assert.Equal(t, docent.EINVALID, docent.ErrorCode(err))
	})
}

func fixed(text string, err error) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(ctx context.Context, file *docent.File) (string, error) { return text, err },
	}
}

func TestExtractorChain_Extract(t *testing.T) {
	t.Parallel()

	file := &docent.File{Name: "page.html"}

	t.Run("returns first non-blank text", func(t *testing.T) {
		t.Parallel()

		chain := docent.ExtractorChain{fixed("  ", nil), fixed("second", nil), fixed("third", nil)}

		text, err := chain.Extract(context.Background(), file)

		require.NoError(t, err)
		assert.Equal(t, "second", text)
	})

	t.Run("stops on error", func(t *testing.T) {
		t.Parallel()

		chain := docent.ExtractorChain{fixed("", errors.New("broken")), fixed("unused", nil)}

		_, err := chain.Extract(context.Background(), file)

		require.EqualError(t, err, "broken")
	})

	t.Run("all blank yields empty text", func(t *testing.T) {
		t.Parallel()

		text, err := docent.ExtractorChain{fixed("", nil)}.Extract(context.Background(), file)

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}

package docent_test

import (
	"testing"

	"github.com/fwojciec/docent"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		text          string
		referenceMode bool
		want          docent.Classification
	}{
		{
			name: "plain question is a direct query",
			text: "Tell me about caching",
			want: docent.Classification{Kind: docent.DirectQuery},
		},
		{
			name: "bare url needs ingestion",
			text: "https://example.com/docs",
			want: docent.Classification{Kind: docent.NeedsIngestion, Locator: "https://example.com/docs"},
		},
		{
			name:          "url wins in reference mode",
			text:          "read https://example.com/docs please",
			referenceMode: true,
			want:          docent.Classification{Kind: docent.NeedsIngestion, Locator: "https://example.com/docs"},
		},
		{
			name: "url embedded in question",
			text: "what does http://htmx.org/attributes say about hx-get?",
			want: docent.Classification{Kind: docent.NeedsIngestion, Locator: "http://htmx.org/attributes"},
		},
		{
			name: "first url wins",
			text: "compare https://a.dev/x and https://b.dev/y",
			want: docent.Classification{Kind: docent.NeedsIngestion, Locator: "https://a.dev/x"},
		},
		{
			name: "scheme is case-sensitive",
			text: "HTTPS://example.com/docs",
			want: docent.Classification{Kind: docent.DirectQuery},
		},
		{
			name: "other schemes are not urls",
			text: "ftp://example.com/file",
			want: docent.Classification{Kind: docent.DirectQuery},
		},
		{
			name: "domain without url is a query outside reference mode",
			text: "example.com",
			want: docent.Classification{Kind: docent.DirectQuery},
		},
		{
			name:          "domain in reference mode uses trimmed text",
			text:          "  docs.python.org  ",
			referenceMode: true,
			want:          docent.Classification{Kind: docent.NeedsIngestion, Locator: "docs.python.org"},
		},
		{
			name:          "reference mode without a dot falls back to query",
			text:          "react hooks",
			referenceMode: true,
			want:          docent.Classification{Kind: docent.DirectQuery},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := docent.Classify(tt.text, tt.referenceMode)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_URLIgnoresMode(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com",
		"see http://localhost:3000/docs/intro",
		"https://go.dev/doc/effective_go#names is long",
	}
	for _, in := range inputs {
		off := docent.Classify(in, false)
		on := docent.Classify(in, true)

		assert.Equal(t, docent.NeedsIngestion, off.Kind, in)
		assert.Equal(t, off, on, in)
	}
}

func TestTurnKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "direct_query", docent.DirectQuery.String())
	assert.Equal(t, "needs_ingestion", docent.NeedsIngestion.String())
}

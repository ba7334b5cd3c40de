package mock

import (
	"context"

	"github.com/fwojciec/docent"
)

var _ docent.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docent.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, file *docent.File) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, file *docent.File) (string, error) {
	return e.ExtractFn(ctx, file)
}

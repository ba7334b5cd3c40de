package mock

import (
	"context"

	"github.com/fwojciec/docent"
)

var _ docent.Ingester = (*Ingester)(nil)

// Ingester is a mock implementation of docent.Ingester.
type Ingester struct {
	IngestFn func(ctx context.Context, locator string, depth int) (*docent.IngestResult, error)
}

func (i *Ingester) Ingest(ctx context.Context, locator string, depth int) (*docent.IngestResult, error) {
	return i.IngestFn(ctx, locator, depth)
}

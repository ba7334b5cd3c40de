package mock

import (
	"context"

	"github.com/fwojciec/docent"
)

var _ docent.Asker = (*Asker)(nil)

// Asker is a mock implementation of docent.Asker.
type Asker struct {
	AskFn func(ctx context.Context, q *docent.Question) (*docent.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, q *docent.Question) (*docent.Answer, error) {
	return a.AskFn(ctx, q)
}

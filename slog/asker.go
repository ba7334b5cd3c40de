package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docent"
)

// Ensure LoggingAsker implements docent.Asker.
var _ docent.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
// Question and answer text are not logged.
type LoggingAsker struct {
	next   docent.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next docent.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation.
func (a *LoggingAsker) Ask(ctx context.Context, q *docent.Question) (answer *docent.Answer, err error) {
	defer func(begin time.Time) {
		var history, sources int
		var withFile bool
		if q != nil {
			history = len(q.History)
			withFile = q.FileContext != ""
		}
		if answer != nil {
			sources = len(answer.Sources)
		}
		a.logger.Info("ask",
			"history", history,
			"file", withFile,
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, q)
}

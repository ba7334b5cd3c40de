package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docent"
)

// Ensure LoggingIngester implements docent.Ingester.
var _ docent.Ingester = (*LoggingIngester)(nil)

// LoggingIngester wraps an Ingester with logging.
type LoggingIngester struct {
	next   docent.Ingester
	logger *slog.Logger
}

// NewLoggingIngester creates a new LoggingIngester.
func NewLoggingIngester(next docent.Ingester, logger *slog.Logger) *LoggingIngester {
	return &LoggingIngester{next: next, logger: logger}
}

// Ingest delegates to the wrapped ingester and logs the operation.
func (i *LoggingIngester) Ingest(ctx context.Context, locator string, depth int) (result *docent.IngestResult, err error) {
	defer func(begin time.Time) {
		var units int
		if result != nil {
			units = result.NewUnits
		}
		i.logger.Info("ingest",
			"url", locator,
			"depth", depth,
			"units", units,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Ingest(ctx, locator, depth)
}

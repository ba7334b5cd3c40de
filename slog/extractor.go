package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docent"
)

// Ensure LoggingExtractor implements docent.Extractor.
var _ docent.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   docent.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docent.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, file *docent.File) (text string, err error) {
	defer func(begin time.Time) {
		var name string
		var size int
		if file != nil {
			name, size = file.Name, len(file.Data)
		}
		e.logger.Info("extract",
			"file", name,
			"bytes", size,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, file)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sheetmill/sheetmill"
)

// Ensure LoggingWriter implements sheetmill.SpreadsheetWriter.
var _ sheetmill.SpreadsheetWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a SpreadsheetWriter with debug logging.
type LoggingWriter struct {
	next   sheetmill.SpreadsheetWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next sheetmill.SpreadsheetWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteTable delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteTable(ctx context.Context, table *sheetmill.Table, path string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("spreadsheet write",
			"path", path,
			"rows", len(table.Rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteTable(ctx, table, path)
}

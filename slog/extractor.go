package slog

import (
	"log/slog"
	"time"

	"github.com/sheetmill/sheetmill"
)

// Ensure LoggingExtractor implements sheetmill.TableExtractor.
var _ sheetmill.TableExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TableExtractor with debug logging.
type LoggingExtractor struct {
	next   sheetmill.TableExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sheetmill.TableExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractTables delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractTables(text string) (table *sheetmill.Table, err error) {
	defer func(begin time.Time) {
		rows := 0
		if table != nil {
			rows = len(table.Rows)
		}
		e.logger.Info("table extraction",
			"chars", len(text),
			"rows", rows,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractTables(text)
}

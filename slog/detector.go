package slog

import (
	"log/slog"
	"time"

	"github.com/sheetmill/sheetmill"
)

// Ensure LoggingDetector implements sheetmill.EncodingDetector.
var _ sheetmill.EncodingDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps an EncodingDetector with debug logging.
type LoggingDetector struct {
	next   sheetmill.EncodingDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next sheetmill.EncodingDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// DetectEncoding delegates to the wrapped detector and logs the result.
func (d *LoggingDetector) DetectEncoding(data []byte) string {
	begin := time.Now()
	encoding := d.next.DetectEncoding(data)
	d.logger.Info("encoding detection",
		"bytes", len(data),
		"encoding", encoding,
		"duration", time.Since(begin),
	)
	return encoding
}

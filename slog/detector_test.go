package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sheetmill/sheetmill/mock"
	smslog "github.com/sheetmill/sheetmill/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingDetector_DetectEncoding(t *testing.T) {
	t.Parallel()

	t.Run("logs detection with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.EncodingDetector{
			DetectEncodingFn: func(data []byte) string {
				return "windows-1252"
			},
		}

		detector := smslog.NewLoggingDetector(inner, logger)
		encoding := detector.DetectEncoding([]byte("caf\xe9"))

		assert.Equal(t, "windows-1252", encoding)
		output := buf.String()
		assert.Contains(t, output, "encoding detection")
		assert.Contains(t, output, "bytes=4")
		assert.Contains(t, output, "encoding=windows-1252")
		assert.Contains(t, output, "duration=")
	})
}

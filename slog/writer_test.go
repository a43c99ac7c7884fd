package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/sheetmill/sheetmill"
	"github.com/sheetmill/sheetmill/mock"
	smslog "github.com/sheetmill/sheetmill/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWriter_WriteTable(t *testing.T) {
	t.Parallel()

	t.Run("logs write with path and row count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SpreadsheetWriter{
			WriteTableFn: func(ctx context.Context, table *sheetmill.Table, path string) error {
				return nil
			},
		}

		writer := smslog.NewLoggingWriter(inner, logger)
		table := sheetmill.BuildTable([][]string{{"x"}, {"y"}, {"z"}})
		err := writer.WriteTable(context.Background(), table, "/out/report.xlsx")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "spreadsheet write")
		assert.Contains(t, output, "path=/out/report.xlsx")
		assert.Contains(t, output, "rows=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SpreadsheetWriter{
			WriteTableFn: func(ctx context.Context, table *sheetmill.Table, path string) error {
				return errors.New("disk full")
			},
		}

		writer := smslog.NewLoggingWriter(inner, logger)
		table := sheetmill.BuildTable([][]string{{"x"}})
		err := writer.WriteTable(context.Background(), table, "/out/report.xlsx")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "spreadsheet write")
		assert.Contains(t, output, "err=\"disk full\"")
	})
}

package mock

import (
	"context"

	"github.com/sheetmill/sheetmill"
)

var _ sheetmill.SpreadsheetWriter = (*SpreadsheetWriter)(nil)

// SpreadsheetWriter is a mock implementation of sheetmill.SpreadsheetWriter.
type SpreadsheetWriter struct {
	WriteTableFn func(ctx context.Context, table *sheetmill.Table, path string) error
}

func (w *SpreadsheetWriter) WriteTable(ctx context.Context, table *sheetmill.Table, path string) error {
	return w.WriteTableFn(ctx, table, path)
}

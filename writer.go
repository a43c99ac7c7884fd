package sheetmill

import "context"

// SpreadsheetWriter persists a table as a spreadsheet file.
type SpreadsheetWriter interface {
	// WriteTable writes the table to path as an xlsx workbook. Cells are
	// written verbatim starting at A1: no header row, no index column.
	// The context controls timeout and cancellation.
	WriteTable(ctx context.Context, table *Table, path string) error
}

// WorkbookResaver converts an xlsx workbook into a legacy container format
// by driving an installed spreadsheet application.
// Platforms without the application compile a stub that returns EUNSUPPORTED.
type WorkbookResaver interface {
	// Resave opens the workbook at src and saves it to dst in the target
	// format, leaving src in place.
	Resave(ctx context.Context, src, dst string) error
}

package excelize

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sheetmill/sheetmill"
)

// Ensure Writer implements sheetmill.SpreadsheetWriter at compile time.
var _ sheetmill.SpreadsheetWriter = (*Writer)(nil)

// sheetName is the single sheet tables are written to.
const sheetName = "Sheet1"

// Writer writes tables as xlsx workbooks. Rows go through a streaming writer,
// keeping memory flat for large tables.
type Writer struct{}

// NewWriter returns a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTable writes the table to path as an xlsx workbook. Cells are written
// verbatim starting at A1: no header row, no index column, all values as
// text.
func (w *Writer) WriteTable(ctx context.Context, table *sheetmill.Table, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}

	for i, row := range table.Rows {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing rows: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

package sheetmill

// Table is a rectangular grid of cell values ready for spreadsheet export.
// Every row has the same length and the first row is data, not a header.
type Table struct {
	Rows [][]string
}

// BuildTable squares rows into a Table by padding every row with empty-string
// cells to the maximum observed width. Row order is preserved and cell values
// are copied, so the caller may reuse the input slices.
func BuildTable(rows [][]string) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	squared := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		squared = append(squared, cells)
	}

	return &Table{Rows: squared}
}

// Width returns the number of columns in the table.
func (t *Table) Width() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

package sheetmill

// TableExtractor extracts tabular data from decoded text.
type TableExtractor interface {
	// ExtractTables pulls every table out of text and combines them, in
	// document order, into a single rectangular Table. It returns an
	// ENODATA error when the text contains no usable rows.
	ExtractTables(text string) (*Table, error)
}

package sheetmill

import "strings"

// OutputFormat identifies a spreadsheet container format.
type OutputFormat string

const (
	// FormatXLSX is the Office Open XML workbook format, written directly.
	FormatXLSX OutputFormat = "xlsx"

	// FormatXLSB is the legacy binary workbook format, produced by
	// re-saving an intermediate xlsx workbook.
	FormatXLSB OutputFormat = "xlsb"
)

// ParseFormat parses a format name such as "xlsx" or ".XLSB".
// It returns an EINVALID error for unknown names.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "xlsx":
		return FormatXLSX, nil
	case "xlsb":
		return FormatXLSB, nil
	default:
		return "", Errorf(EINVALID, "unsupported output format %q", s)
	}
}

// Ext returns the file extension for the format, dot included.
func (f OutputFormat) Ext() string {
	return "." + string(f)
}

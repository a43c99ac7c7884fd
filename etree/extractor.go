package etree

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/sheetmill/sheetmill"
)

// Ensure Extractor implements sheetmill.TableExtractor at compile time.
var _ sheetmill.TableExtractor = (*Extractor)(nil)

// Extractor extracts tables from SpreadsheetML, the XML Spreadsheet 2003
// format. Namespace prefixes are ignored. Cell ss:Index gaps are padded with
// empty cells; row indexes are ignored, so rows stay dense.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractTables collects every Table element in document order, pads each to
// its own width, and combines them into a single table padded to the widest.
// It returns ENODATA when no Table yields any rows and EINVALID when the
// input is not parseable XML.
func (e *Extractor) ExtractTables(text string) (*sheetmill.Table, error) {
	doc := etree.NewDocument()
	// The pipeline hands over UTF-8 regardless of the declared encoding.
	doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromString(text); err != nil {
		return nil, sheetmill.Errorf(sheetmill.EINVALID, "failed to parse XML: %v", err)
	}

	var combined [][]string
	for _, tableEl := range doc.FindElements("//Table") {
		var rows [][]string
		for _, rowEl := range tableEl.SelectElements("Row") {
			if cells := rowCells(rowEl); len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
		if len(rows) > 0 {
			combined = append(combined, sheetmill.BuildTable(rows).Rows...)
		}
	}

	if len(combined) == 0 {
		return nil, sheetmill.Errorf(sheetmill.ENODATA, "no tables found")
	}

	return sheetmill.BuildTable(combined), nil
}

// rowCells reads a Row's cells, padding ss:Index gaps with empty strings.
func rowCells(row *etree.Element) []string {
	var cells []string
	for _, cell := range row.SelectElements("Cell") {
		if v := cell.SelectAttrValue("Index", ""); v != "" {
			if idx, err := strconv.Atoi(v); err == nil {
				for len(cells) < idx-1 {
					cells = append(cells, "")
				}
			}
		}
		cells = append(cells, cellData(cell))
	}
	return cells
}

// cellData returns the cell's Data text, whitespace-collapsed.
func cellData(cell *etree.Element) string {
	data := cell.SelectElement("Data")
	if data == nil {
		return ""
	}
	return strings.Join(strings.Fields(data.Text()), " ")
}

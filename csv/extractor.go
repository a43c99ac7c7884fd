package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/sheetmill/sheetmill"
)

// Ensure Extractor implements sheetmill.TableExtractor at compile time.
var _ sheetmill.TableExtractor = (*Extractor)(nil)

// Extractor parses delimited text into a table. The delimiter is inferred
// from a leading sample; the whole text is then split with conventional
// quoting, so quoted fields may contain delimiters and newlines. The first
// row is data, not a header.
type Extractor struct {
	Sniffer *Sniffer
}

// NewExtractor returns an Extractor with a default Sniffer.
func NewExtractor() *Extractor {
	return &Extractor{Sniffer: NewSniffer()}
}

// ExtractTables splits text on the inferred delimiter and pads the rows into
// a rectangular table. Parsing is lenient: ragged rows are allowed, stray
// quotes are taken literally, and records that still fail to parse are
// dropped. It returns ENODATA when no record survives.
func (e *Extractor) ExtractTables(text string) (*sheetmill.Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = e.Sniffer.Sniff(text)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed records are skipped, never fatal.
			continue
		}
		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, sheetmill.Errorf(sheetmill.ENODATA, "no data found")
	}

	return sheetmill.BuildTable(rows), nil
}

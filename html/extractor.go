package html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/sheetmill/sheetmill"
)

// Ensure Extractor implements sheetmill.TableExtractor at compile time.
var _ sheetmill.TableExtractor = (*Extractor)(nil)

// Extractor scans markup for table structures without building a DOM. It
// tolerates malformed input: a new row or cell closes the previous one, stray
// rows and cells outside a table are ignored, attributes are skipped, and
// structures still open at end of input are flushed. Nested tables are not
// supported; an inner table terminates the one enclosing it.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractTables collects every table in text, pads each to its own width, and
// combines them in document order into a single table padded to the widest
// table. Cell text is entity-unescaped, stripped of markup, and
// whitespace-collapsed. It returns ENODATA when no table yields any rows.
func (e *Extractor) ExtractTables(text string) (*sheetmill.Table, error) {
	var s scanner
	z := html.NewTokenizer(strings.NewReader(text))

scan:
	for {
		switch z.Next() {
		case html.ErrorToken:
			// The tokenizer never fails on malformed markup; an error
			// token means the input is exhausted.
			break scan
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			s.open(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			s.close(string(name))
		case html.TextToken:
			s.text(z.Text())
		}
	}
	s.closeTable()

	if len(s.tables) == 0 {
		return nil, sheetmill.Errorf(sheetmill.ENODATA, "no tables found")
	}

	var combined [][]string
	for _, rows := range s.tables {
		combined = append(combined, sheetmill.BuildTable(rows).Rows...)
	}
	return sheetmill.BuildTable(combined), nil
}

// scanner tracks table, row, and cell state across tag boundaries.
type scanner struct {
	tables [][][]string
	rows   [][]string
	cells  []string
	cell   strings.Builder

	inTable bool
	inRow   bool
	inCell  bool
}

func (s *scanner) open(name string) {
	switch name {
	case "table":
		s.closeTable()
		s.inTable = true
	case "tr":
		if !s.inTable {
			return
		}
		s.closeRow()
		s.inRow = true
	case "td", "th":
		if !s.inRow {
			return
		}
		s.closeCell()
		s.inCell = true
	}
}

func (s *scanner) close(name string) {
	switch name {
	case "table":
		s.closeTable()
	case "tr":
		s.closeRow()
	case "td", "th":
		s.closeCell()
	}
}

func (s *scanner) text(b []byte) {
	if s.inCell {
		s.cell.Write(b)
	}
}

func (s *scanner) closeCell() {
	if !s.inCell {
		return
	}
	s.cells = append(s.cells, collapseWhitespace(s.cell.String()))
	s.cell.Reset()
	s.inCell = false
}

// closeRow keeps the row only if it produced at least one cell.
func (s *scanner) closeRow() {
	s.closeCell()
	if !s.inRow {
		return
	}
	if len(s.cells) > 0 {
		s.rows = append(s.rows, s.cells)
	}
	s.cells = nil
	s.inRow = false
}

// closeTable keeps the table only if it produced at least one row.
func (s *scanner) closeTable() {
	s.closeRow()
	if !s.inTable {
		return
	}
	if len(s.rows) > 0 {
		s.tables = append(s.tables, s.rows)
	}
	s.rows = nil
	s.inTable = false
}

// collapseWhitespace trims s and squeezes internal whitespace runs to single
// spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

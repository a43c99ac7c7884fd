package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sheetmill/sheetmill"
)

// Ensure Extractor implements sheetmill.TableExtractor at compile time.
var _ sheetmill.TableExtractor = (*Extractor)(nil)

// Extractor extracts tables from markup by building a DOM. Unlike the scanner
// in the html package it attributes rows and cells to their nearest ancestor
// table, so nested tables come out as separate tables and their content is
// excluded from the enclosing cell.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractTables extracts every table element in document order, pads each to
// its own width, and combines them into a single table padded to the widest.
// It returns ENODATA when no table yields any rows.
func (e *Extractor) ExtractTables(text string) (*sheetmill.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, sheetmill.Errorf(sheetmill.EINVALID, "failed to parse markup: %v", err)
	}

	var combined [][]string
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var rows [][]string
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if !closestIs(row, "table", table) {
				return
			}

			var cells []string
			row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				if !closestIs(cell, "tr", row) {
					return
				}
				cells = append(cells, cellText(cell))
			})

			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		})

		if len(rows) > 0 {
			combined = append(combined, sheetmill.BuildTable(rows).Rows...)
		}
	})

	if len(combined) == 0 {
		return nil, sheetmill.Errorf(sheetmill.ENODATA, "no tables found")
	}

	return sheetmill.BuildTable(combined), nil
}

// closestIs reports whether sel's nearest ancestor matching selector is
// exactly the owner node. It keeps rows and cells of nested tables from
// leaking into the tables enclosing them.
func closestIs(sel *goquery.Selection, selector string, owner *goquery.Selection) bool {
	closest := sel.Closest(selector)
	return len(closest.Nodes) == 1 && len(owner.Nodes) == 1 && closest.Nodes[0] == owner.Nodes[0]
}

// cellText returns the cell's text with nested table content removed and
// whitespace collapsed.
func cellText(cell *goquery.Selection) string {
	if cell.Find("table").Length() > 0 {
		cell = cell.Clone()
		cell.Find("table").Remove()
	}
	return strings.Join(strings.Fields(cell.Text()), " ")
}

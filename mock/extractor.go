package mock

import (
	"github.com/sheetmill/sheetmill"
)

var _ sheetmill.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of sheetmill.TableExtractor.
type TableExtractor struct {
	ExtractTablesFn func(text string) (*sheetmill.Table, error)
}

func (e *TableExtractor) ExtractTables(text string) (*sheetmill.Table, error) {
	return e.ExtractTablesFn(text)
}

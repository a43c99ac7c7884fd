package mock

import (
	"context"

	"github.com/sheetmill/sheetmill"
)

var _ sheetmill.WorkbookResaver = (*WorkbookResaver)(nil)

// WorkbookResaver is a mock implementation of sheetmill.WorkbookResaver.
type WorkbookResaver struct {
	ResaveFn func(ctx context.Context, src, dst string) error
}

func (r *WorkbookResaver) Resave(ctx context.Context, src, dst string) error {
	return r.ResaveFn(ctx, src, dst)
}

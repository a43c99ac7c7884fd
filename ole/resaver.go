//go:build !windows

// Package ole re-saves xlsx workbooks into legacy container formats by
// driving Microsoft Excel through OLE automation.
//
// This is the stub compiled on non-Windows platforms, where Excel automation
// is unavailable. Supported reports false and Resave always returns an
// EUNSUPPORTED error.
package ole

import (
	"context"

	"github.com/sheetmill/sheetmill"
)

// Ensure Resaver implements sheetmill.WorkbookResaver at compile time.
var _ sheetmill.WorkbookResaver = (*Resaver)(nil)

// Resaver is the stub re-saver for platforms without Excel automation.
type Resaver struct{}

// NewResaver returns the stub Resaver.
func NewResaver() *Resaver {
	return &Resaver{}
}

// Supported reports whether Excel automation is available on this platform.
func Supported() bool {
	return false
}

// Resave always returns EUNSUPPORTED.
func (r *Resaver) Resave(_ context.Context, _, _ string) error {
	return sheetmill.Errorf(sheetmill.EUNSUPPORTED, "xlsb output requires Microsoft Excel on Windows")
}

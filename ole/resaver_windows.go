// Package ole re-saves xlsx workbooks into legacy container formats by
// driving Microsoft Excel through OLE automation. It requires Windows with
// Excel installed; other platforms compile a stub whose Resave returns
// EUNSUPPORTED.
package ole

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/sheetmill/sheetmill"
)

// Ensure Resaver implements sheetmill.WorkbookResaver at compile time.
var _ sheetmill.WorkbookResaver = (*Resaver)(nil)

// xlExcel12 is Excel's FileFormat constant for the Binary Workbook (.xlsb).
const xlExcel12 = 50

// Resaver re-saves workbooks through a hidden Excel instance.
type Resaver struct{}

// NewResaver returns a Resaver.
func NewResaver() *Resaver {
	return &Resaver{}
}

// Supported reports whether Excel automation is available on this platform.
func Supported() bool {
	return true
}

// Resave opens the workbook at src in a hidden Excel instance and saves it to
// dst as an Excel Binary Workbook, leaving src in place. The context is only
// observed before Excel starts; OLE calls cannot be cancelled midway.
func (r *Resaver) Resave(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("resolving source path: %w", err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("resolving destination path: %w", err)
	}

	// COM apartment threading requires a stable OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitialize(0); err != nil {
		return fmt.Errorf("initializing COM: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Excel.Application")
	if err != nil {
		return fmt.Errorf("starting Excel: %w", err)
	}
	defer unknown.Release()

	excel, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("binding Excel automation interface: %w", err)
	}
	defer excel.Release()
	defer oleutil.CallMethod(excel, "Quit")

	if _, err := oleutil.PutProperty(excel, "Visible", false); err != nil {
		return fmt.Errorf("hiding Excel window: %w", err)
	}
	if _, err := oleutil.PutProperty(excel, "DisplayAlerts", false); err != nil {
		return fmt.Errorf("disabling Excel alerts: %w", err)
	}

	workbooksVar, err := oleutil.GetProperty(excel, "Workbooks")
	if err != nil {
		return fmt.Errorf("accessing workbooks: %w", err)
	}
	workbooks := workbooksVar.ToIDispatch()
	defer workbooks.Release()

	wbVar, err := oleutil.CallMethod(workbooks, "Open", absSrc)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	wb := wbVar.ToIDispatch()
	defer wb.Release()
	defer oleutil.CallMethod(wb, "Close", false)

	if _, err := oleutil.CallMethod(wb, "SaveAs", absDst, xlExcel12); err != nil {
		return fmt.Errorf("saving as xlsb: %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/sheetmill/sheetmill"
	"github.com/sheetmill/sheetmill/convert"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	outDir := c.Out
	if outDir == "" {
		outDir = filepath.Join(c.SourceDir, "converted")
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Converting %d files\n", event.Total)
		case convert.ProgressCompleted, convert.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", filepath.Base(event.Path), event.Outcome)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  %s: %s\n", filepath.Base(event.Path), event.Outcome)
		}
	}

	result, err := deps.Converter.ConvertDir(deps.Ctx, c.SourceDir, outDir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetmill.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Conversion complete: %d converted, %d skipped, %d failed\n",
		result.Converted, result.Skipped, result.Failed)
	fmt.Fprintf(deps.Stdout, "Converted files saved to: %s\n", outDir)

	return nil
}

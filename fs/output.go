package fs

import (
	"path/filepath"
	"strings"

	"github.com/sheetmill/sheetmill"
)

// OutputPath maps a source file to its output location in outDir.
// The source extension is replaced with the output format's.
// Example: /data/report.csv → <outDir>/report.xlsx
func OutputPath(outDir, sourcePath string, format sheetmill.OutputFormat) string {
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		// Dotfiles like ".env" have no stem to trim.
		name = base
	}
	return filepath.Join(outDir, name+format.Ext())
}

// Package convert provides file-to-spreadsheet conversion orchestration.
// It coordinates encoding detection, decoding, content classification,
// table extraction, and spreadsheet output.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sheetmill/sheetmill"
	"github.com/sheetmill/sheetmill/fs"
)

// Converter orchestrates the conversion of files into spreadsheets.
type Converter struct {
	Detector    sheetmill.EncodingDetector
	Decoder     sheetmill.TextDecoder
	Markup      sheetmill.TableExtractor
	Spreadsheet sheetmill.TableExtractor
	Delimited   sheetmill.TableExtractor
	Writer      sheetmill.SpreadsheetWriter
	Resaver     sheetmill.WorkbookResaver
	Conversions sheetmill.ConversionService
	Format      sheetmill.OutputFormat
	Concurrency int
	Force       bool
}

// Result holds the outcome of a batch conversion.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Outcome   sheetmill.Outcome
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	path    string
	outcome sheetmill.Outcome
}

// ConvertFile converts a single file and reports the outcome. It never
// returns an error: read failures, empty sources, and write failures all
// fold into the outcome's status and message.
func (c *Converter) ConvertFile(ctx context.Context, sourcePath, outputPath string) sheetmill.Outcome {
	data, err := fs.ReadSource(sourcePath)
	if err != nil {
		return outcomeFromError(err)
	}
	return c.convertData(ctx, data, outputPath)
}

// ConvertDir converts every regular file in sourceDir, writing outputs to
// outDir. The progress callback, if provided, receives events as the batch
// proceeds. One file's failure never aborts the batch.
func (c *Converter) ConvertDir(ctx context.Context, sourceDir, outDir string, progress ProgressFunc) (*Result, error) {
	paths, err := fs.SourcePaths(sourceDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if len(paths) == 0 {
		return &Result{}, nil
	}

	// Files are independent units, so any concurrency level is safe. The
	// default stays at one file at a time.
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	resultCh := make(chan fileResult, len(paths))

	var completed atomic.Int64
	total := len(paths)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, path := range paths {
			path := path
			g.Go(func() error {
				resultCh <- fileResult{
					path:    path,
					outcome: c.processFile(gctx, path, outDir),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for fr := range resultCh {
		completed.Add(1)

		switch fr.outcome.Status {
		case sheetmill.StatusConverted:
			result.Converted++
		case sheetmill.StatusSkipped:
			result.Skipped++
		default:
			result.Failed++
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      eventType(fr.outcome.Status),
				Completed: int(completed.Load()),
				Total:     total,
				Path:      fr.path,
				Outcome:   fr.outcome,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// processFile converts one file and records the outcome in the conversion
// log when one is configured.
func (c *Converter) processFile(ctx context.Context, sourcePath, outDir string) sheetmill.Outcome {
	outputPath := fs.OutputPath(outDir, sourcePath, c.format())

	data, err := fs.ReadSource(sourcePath)
	if err != nil {
		return c.record(ctx, sourcePath, "", outputPath, outcomeFromError(err))
	}

	hash := hashBytes(data)

	if !c.Force && c.unchanged(ctx, sourcePath, hash, outputPath) {
		return sheetmill.Skipped("unchanged since last conversion")
	}

	outcome := c.convertData(ctx, data, outputPath)
	return c.record(ctx, sourcePath, hash, outputPath, outcome)
}

// convertData runs the conversion pipeline on raw file contents.
func (c *Converter) convertData(ctx context.Context, data []byte, outputPath string) sheetmill.Outcome {
	encoding := c.Detector.DetectEncoding(data)
	text := c.Decoder.Decode(data, encoding)

	table, err := c.extract(text)
	if err != nil {
		return outcomeFromError(err)
	}

	if err := c.export(ctx, table, outputPath); err != nil {
		return outcomeFromError(err)
	}

	return sheetmill.Converted(len(table.Rows))
}

// extract routes text to the extractor matching its content kind. Markup
// that yields no tables gets a second chance as SpreadsheetML, which
// classifies as markup through its XML declaration but carries its tables
// in Row and Cell elements instead of tr and td.
func (c *Converter) extract(text string) (*sheetmill.Table, error) {
	if sheetmill.ClassifyContent(text) != sheetmill.KindMarkup {
		return c.Delimited.ExtractTables(text)
	}

	table, err := c.Markup.ExtractTables(text)
	if err != nil && sheetmill.ErrorCode(err) == sheetmill.ENODATA && c.Spreadsheet != nil {
		if table, xmlErr := c.Spreadsheet.ExtractTables(text); xmlErr == nil {
			return table, nil
		}
		return nil, err
	}
	return table, err
}

// export writes the table to outputPath in the configured format. XLSB
// output is produced by writing a temporary workbook next to the output
// and re-saving it through a spreadsheet application; the temp artifact is
// removed whether or not the re-save succeeds.
func (c *Converter) export(ctx context.Context, table *sheetmill.Table, outputPath string) error {
	if c.format() == sheetmill.FormatXLSX {
		return c.Writer.WriteTable(ctx, table, outputPath)
	}

	if c.Resaver == nil {
		return sheetmill.Errorf(sheetmill.EUNSUPPORTED, "xlsb output is not supported in this build")
	}

	tempPath := filepath.Join(filepath.Dir(outputPath), uuid.New().String()+".xlsx")
	defer os.Remove(tempPath)

	if err := c.Writer.WriteTable(ctx, table, tempPath); err != nil {
		return err
	}
	return c.Resaver.Resave(ctx, tempPath, outputPath)
}

// unchanged reports whether the source was already converted with the same
// contents and the output file still exists.
func (c *Converter) unchanged(ctx context.Context, sourcePath, hash, outputPath string) bool {
	if c.Conversions == nil {
		return false
	}

	latest, err := c.Conversions.LatestConversion(ctx, sourcePath)
	if err != nil || latest.Status != sheetmill.StatusConverted || latest.SourceHash != hash {
		return false
	}

	if _, err := os.Stat(outputPath); err != nil {
		return false
	}
	return true
}

// record persists the outcome when a conversion log is configured.
// Recording is best-effort: a failed history write doesn't undo a finished
// conversion.
func (c *Converter) record(ctx context.Context, sourcePath, hash, outputPath string, outcome sheetmill.Outcome) sheetmill.Outcome {
	if c.Conversions == nil {
		return outcome
	}

	_ = c.Conversions.CreateConversion(ctx, &sheetmill.Conversion{
		SourcePath: sourcePath,
		SourceHash: hash,
		OutputPath: outputPath,
		Format:     c.format(),
		Status:     outcome.Status,
		RowCount:   outcome.RowCount,
		Message:    outcome.Message,
	})
	return outcome
}

func (c *Converter) format() sheetmill.OutputFormat {
	if c.Format == "" {
		return sheetmill.FormatXLSX
	}
	return c.Format
}

func eventType(status sheetmill.OutcomeStatus) ProgressType {
	switch status {
	case sheetmill.StatusConverted:
		return ProgressCompleted
	case sheetmill.StatusSkipped:
		return ProgressSkipped
	default:
		return ProgressFailed
	}
}

// outcomeFromError folds an error into a terminal outcome. ENODATA-coded
// errors describe empty sources rather than failures.
func outcomeFromError(err error) sheetmill.Outcome {
	code := sheetmill.ErrorCode(err)
	if code == sheetmill.ENODATA {
		return sheetmill.NoData(sheetmill.ErrorMessage(err))
	}
	if code != sheetmill.EINTERNAL {
		return sheetmill.Failed(sheetmill.ErrorMessage(err))
	}
	return sheetmill.Failed(err.Error())
}

// hashBytes computes a hash of the source contents using xxhash.
func hashBytes(data []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}

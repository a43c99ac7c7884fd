package sheetmill

import "fmt"

// OutcomeStatus labels the result of converting one file.
type OutcomeStatus string

const (
	StatusConverted OutcomeStatus = "converted"
	StatusNoData    OutcomeStatus = "no_data"
	StatusFailed    OutcomeStatus = "failed"
	StatusSkipped   OutcomeStatus = "skipped"
)

// Outcome is the result of converting one file. Conversion is total: every
// file yields exactly one outcome and failures travel as values, never as
// panics.
type Outcome struct {
	// Status classifies the result.
	Status OutcomeStatus

	// RowCount is the number of rows written. Set only for StatusConverted.
	RowCount int

	// Message is a human-readable reason. Set for every status except
	// StatusConverted.
	Message string
}

// Converted returns a success outcome for a table of rowCount rows.
func Converted(rowCount int) Outcome {
	return Outcome{Status: StatusConverted, RowCount: rowCount}
}

// NoData returns the outcome for a readable file with nothing tabular in it.
func NoData(reason string) Outcome {
	return Outcome{Status: StatusNoData, Message: reason}
}

// Failed returns the outcome for a file that could not be converted.
func Failed(reason string) Outcome {
	return Outcome{Status: StatusFailed, Message: reason}
}

// Skipped returns the outcome for a file whose output is already up to date.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Message: reason}
}

// Success reports whether the file produced a spreadsheet.
func (o Outcome) Success() bool {
	return o.Status == StatusConverted
}

// String renders the outcome as a single report line.
func (o Outcome) String() string {
	switch o.Status {
	case StatusConverted:
		return fmt.Sprintf("converted (%d rows)", o.RowCount)
	case StatusNoData:
		return "no data: " + o.Message
	case StatusSkipped:
		return "skipped: " + o.Message
	default:
		return "failed: " + o.Message
	}
}

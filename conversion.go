package sheetmill

import (
	"context"
	"time"
)

// Conversion records a single file conversion attempt.
type Conversion struct {
	ID         string        `json:"id"`
	SourcePath string        `json:"sourcePath"`
	SourceHash string        `json:"sourceHash"`
	OutputPath string        `json:"outputPath"`
	Format     OutputFormat  `json:"format"`
	Status     OutcomeStatus `json:"status"`
	RowCount   int           `json:"rowCount"`
	Message    string        `json:"message"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.SourcePath == "" {
		return Errorf(EINVALID, "conversion source path required")
	}
	if c.Status == "" {
		return Errorf(EINVALID, "conversion status required")
	}
	return nil
}

// ConversionService represents a service for recording and querying
// conversion history.
type ConversionService interface {
	// CreateConversion records a new conversion.
	CreateConversion(ctx context.Context, conv *Conversion) error

	// FindConversionByID retrieves a conversion by ID.
	// Returns ENOTFOUND if the conversion does not exist.
	FindConversionByID(ctx context.Context, id string) (*Conversion, error)

	// FindConversions retrieves conversions matching the filter, newest
	// first.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)

	// LatestConversion retrieves the most recent conversion recorded for a
	// source path. Returns ENOTFOUND if the path has never been converted.
	LatestConversion(ctx context.Context, sourcePath string) (*Conversion, error)
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	ID         *string        `json:"id"`
	SourcePath *string        `json:"sourcePath"`
	Status     *OutcomeStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

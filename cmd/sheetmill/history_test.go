package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sheetmill/sheetmill"
	main "github.com/sheetmill/sheetmill/cmd/sheetmill"
	"github.com/sheetmill/sheetmill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists conversions with timestamp, status, rows, and path", func(t *testing.T) {
		t.Parallel()

		conversions := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, _ sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error) {
				return []*sheetmill.Conversion{
					{
						ID:         "conv-123",
						SourcePath: "/data/report.csv",
						Status:     sheetmill.StatusConverted,
						RowCount:   42,
						CreatedAt:  time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:         "conv-456",
						SourcePath: "/data/broken.html",
						Status:     sheetmill.StatusNoData,
						Message:    "no tables found",
						CreatedAt:  time.Date(2025, 3, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Conversions: conversions,
		}

		cmd := &main.HistoryCmd{Limit: 20}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "/data/report.csv")
		assert.Contains(t, output, "/data/broken.html")
		assert.Contains(t, output, "converted")
		assert.Contains(t, output, "no_data")
		assert.Contains(t, output, "42")
	})

	t.Run("passes filters through to the service", func(t *testing.T) {
		t.Parallel()

		var gotFilter sheetmill.ConversionFilter
		conversions := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, filter sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Conversions: conversions,
		}

		cmd := &main.HistoryCmd{
			Source: "/data/report.csv",
			Status: "failed",
			Limit:  5,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		require.NotNil(t, gotFilter.SourcePath)
		assert.Equal(t, "/data/report.csv", *gotFilter.SourcePath)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, sheetmill.StatusFailed, *gotFilter.Status)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when history is empty", func(t *testing.T) {
		t.Parallel()

		conversions := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, _ sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error) {
				return []*sheetmill.Conversion{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Conversions: conversions,
		}

		cmd := &main.HistoryCmd{Limit: 20}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No conversions recorded")
	})

	t.Run("returns error when FindConversions fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		conversions := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, _ sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Conversions: conversions,
		}

		cmd := &main.HistoryCmd{Limit: 20}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

package main

import (
	"fmt"

	"github.com/sheetmill/sheetmill"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := sheetmill.ConversionFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourcePath = &c.Source
	}
	if c.Status != "" {
		status := sheetmill.OutcomeStatus(c.Status)
		filter.Status = &status
	}

	conversions, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetmill.ErrorMessage(err))
		return err
	}

	if len(conversions) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions recorded. Use 'sheetmill convert' to create some.")
		return nil
	}

	for _, conv := range conversions {
		fmt.Fprintf(deps.Stdout, "%s  %-9s  %6d  %s\n",
			conv.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			conv.Status,
			conv.RowCount,
			conv.SourcePath,
		)
	}

	return nil
}

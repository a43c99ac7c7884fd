package main

import (
	"context"
	"io"

	"github.com/sheetmill/sheetmill"
	"github.com/sheetmill/sheetmill/convert"
	"github.com/sheetmill/sheetmill/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Conversions sheetmill.ConversionService
	Converter   *convert.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert files in a directory to spreadsheets"`
	History HistoryCmd `cmd:"" help:"List recorded conversions"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	SourceDir   string `arg:"" help:"Directory containing files to convert"`
	Format      string `default:"xlsx" help:"Output format (xlsx or xlsb)"`
	Out         string `help:"Output directory (default: <source-dir>/converted)"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent file limit"`
	DOM         bool   `name:"dom" help:"Parse markup with a DOM instead of the tag scanner"`
	NoLog       bool   `name:"no-log" help:"Don't record conversions in the history database"`
	Force       bool   `short:"f" help:"Reconvert files even when unchanged"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `help:"Filter by source path"`
	Status string `help:"Filter by status (converted, no_data, failed)"`
	Limit  int    `default:"20" help:"Maximum number of entries"`
}

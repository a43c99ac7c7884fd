package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/sheetmill/sheetmill"
	"github.com/sheetmill/sheetmill/chardet"
	"github.com/sheetmill/sheetmill/charset"
	"github.com/sheetmill/sheetmill/convert"
	"github.com/sheetmill/sheetmill/csv"
	"github.com/sheetmill/sheetmill/etree"
	"github.com/sheetmill/sheetmill/excelize"
	"github.com/sheetmill/sheetmill/goquery"
	"github.com/sheetmill/sheetmill/html"
	"github.com/sheetmill/sheetmill/ole"
	smslog "github.com/sheetmill/sheetmill/slog"
	"github.com/sheetmill/sheetmill/sqlite"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Logger for pipeline instrumentation. Silent at the default level.
	Logger *slog.Logger

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ConversionService sheetmill.ConversionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Logger: newLogger(os.Getenv("SHEETMILL_LOG_LEVEL"), os.Getenv("SHEETMILL_LOG_FORMAT")),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sheetmill"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sheetmill --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the conversion log unless this run opts out of it
	if cmd != "convert" || !cli.Convert.NoLog {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SHEETMILL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ConversionService = sqlite.NewConversionService(m.DB)
		deps.DB = m.DB
		deps.Conversions = m.ConversionService
	}

	// Wire the conversion pipeline based on command
	if cmd == "convert" {
		format, err := sheetmill.ParseFormat(cli.Convert.Format)
		if err != nil {
			return err
		}
		if format == sheetmill.FormatXLSB && !ole.Supported() {
			fmt.Fprintln(stderr, "Hint: XLSB output re-saves workbooks through Excel automation")
			return fmt.Errorf("xlsb conversion requires Microsoft Excel on Windows")
		}

		var markup sheetmill.TableExtractor = html.NewExtractor()
		if cli.Convert.DOM {
			markup = goquery.NewExtractor()
		}

		deps.Converter = &convert.Converter{
			Detector:    smslog.NewLoggingDetector(chardet.NewDetector(), m.Logger),
			Decoder:     charset.NewDecoder(),
			Markup:      smslog.NewLoggingExtractor(markup, m.Logger),
			Spreadsheet: smslog.NewLoggingExtractor(etree.NewExtractor(), m.Logger),
			Delimited:   smslog.NewLoggingExtractor(csv.NewExtractor(), m.Logger),
			Writer:      smslog.NewLoggingWriter(excelize.NewWriter(), m.Logger),
			Resaver:     ole.NewResaver(),
			Conversions: deps.Conversions,
			Format:      format,
			Concurrency: cli.Convert.Concurrency,
			Force:       cli.Convert.Force,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger builds the instrumentation logger. Pipeline stages log at info,
// so the default warn level keeps stderr clean unless SHEETMILL_LOG_LEVEL
// asks for more.
func newLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SHEETMILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sheetmill.db"
	}
	dir := filepath.Join(home, ".sheetmill")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sheetmill.db")
}

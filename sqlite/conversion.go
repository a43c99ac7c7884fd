package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sheetmill/sheetmill"
)

// Ensure ConversionService implements sheetmill.ConversionService at compile time.
var _ sheetmill.ConversionService = (*ConversionService)(nil)

// ConversionService is a SQLite implementation of sheetmill.ConversionService.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// CreateConversion records the outcome of a conversion attempt.
func (s *ConversionService) CreateConversion(ctx context.Context, conversion *sheetmill.Conversion) error {
	if err := conversion.Validate(); err != nil {
		return err
	}

	conversion.ID = uuid.New().String()
	conversion.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, source_path, source_hash, output_path, format, status, row_count, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		conversion.ID,
		conversion.SourcePath,
		conversion.SourceHash,
		conversion.OutputPath,
		string(conversion.Format),
		string(conversion.Status),
		conversion.RowCount,
		conversion.Message,
		conversion.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}

	return nil
}

// FindConversionByID retrieves a conversion by its ID.
// Returns ENOTFOUND if the conversion doesn't exist.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*sheetmill.Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, source_hash, output_path, format, status, row_count, message, created_at
		FROM conversions
		WHERE id = ?
	`, id)

	conversion, err := scanConversion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sheetmill.Errorf(sheetmill.ENOTFOUND, "conversion not found")
		}
		return nil, fmt.Errorf("failed to find conversion: %w", err)
	}

	return conversion, nil
}

// FindConversions retrieves conversions matching the filter, newest first.
func (s *ConversionService) FindConversions(ctx context.Context, filter sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, source_path, source_hash, output_path, format, status, row_count, message, created_at
		FROM conversions
		WHERE 1=1
	`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	// created_at has second granularity, so break ties on insertion order.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close()

	var conversions []*sheetmill.Conversion
	for rows.Next() {
		conversion, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, conversion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversions: %w", err)
	}

	return conversions, nil
}

// LatestConversion retrieves the most recent conversion recorded for a source path.
// Returns ENOTFOUND if the path has never been converted.
func (s *ConversionService) LatestConversion(ctx context.Context, sourcePath string) (*sheetmill.Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, source_hash, output_path, format, status, row_count, message, created_at
		FROM conversions
		WHERE source_path = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, sourcePath)

	conversion, err := scanConversion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sheetmill.Errorf(sheetmill.ENOTFOUND, "conversion not found")
		}
		return nil, fmt.Errorf("failed to find latest conversion: %w", err)
	}

	return conversion, nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// scanner abstracts *sql.Row and *sql.Rows for scanConversion.
type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (*sheetmill.Conversion, error) {
	var conversion sheetmill.Conversion
	var format, status, createdAt string

	if err := row.Scan(
		&conversion.ID,
		&conversion.SourcePath,
		&conversion.SourceHash,
		&conversion.OutputPath,
		&format,
		&status,
		&conversion.RowCount,
		&conversion.Message,
		&createdAt,
	); err != nil {
		return nil, err
	}

	conversion.Format = sheetmill.OutputFormat(format)
	conversion.Status = sheetmill.OutcomeStatus(status)

	parsed, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	conversion.CreatedAt = parsed

	return &conversion, nil
}

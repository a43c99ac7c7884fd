package mock

import (
	"context"

	"github.com/sheetmill/sheetmill"
)

var _ sheetmill.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of sheetmill.ConversionService.
type ConversionService struct {
	CreateConversionFn   func(ctx context.Context, conversion *sheetmill.Conversion) error
	FindConversionByIDFn func(ctx context.Context, id string) (*sheetmill.Conversion, error)
	FindConversionsFn    func(ctx context.Context, filter sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error)
	LatestConversionFn   func(ctx context.Context, sourcePath string) (*sheetmill.Conversion, error)
}

func (s *ConversionService) CreateConversion(ctx context.Context, conversion *sheetmill.Conversion) error {
	return s.CreateConversionFn(ctx, conversion)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*sheetmill.Conversion, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter sheetmill.ConversionFilter) ([]*sheetmill.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ConversionService) LatestConversion(ctx context.Context, sourcePath string) (*sheetmill.Conversion, error) {
	return s.LatestConversionFn(ctx, sourcePath)
}

package mock

import (
	"github.com/sheetmill/sheetmill"
)

var _ sheetmill.EncodingDetector = (*EncodingDetector)(nil)

// EncodingDetector is a mock implementation of sheetmill.EncodingDetector.
type EncodingDetector struct {
	DetectEncodingFn func(data []byte) string
}

func (d *EncodingDetector) DetectEncoding(data []byte) string {
	return d.DetectEncodingFn(data)
}

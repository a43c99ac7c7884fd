// Package chardet provides statistical character-encoding detection.
package chardet

import (
	"strings"

	"github.com/gogs/chardet"

	"github.com/sheetmill/sheetmill"
)

// Ensure Detector implements sheetmill.EncodingDetector at compile time.
var _ sheetmill.EncodingDetector = (*Detector)(nil)

// Defaults for Detector tunables.
const (
	// DefaultSampleSize bounds how many leading bytes are examined.
	DefaultSampleSize = 50000

	// DefaultMinConfidence is the 0-100 confidence below which a detection
	// result is discarded in favor of "utf-8".
	DefaultMinConfidence = 70
)

// Detector infers character encodings from raw bytes.
type Detector struct {
	SampleSize    int
	MinConfidence int
}

// NewDetector returns a Detector with default tunables.
func NewDetector() *Detector {
	return &Detector{
		SampleSize:    DefaultSampleSize,
		MinConfidence: DefaultMinConfidence,
	}
}

// DetectEncoding returns a lower-cased encoding label for data, examining at
// most SampleSize leading bytes. It falls back to "utf-8" when data is empty,
// detection fails, or the best guess is below MinConfidence.
func (d *Detector) DetectEncoding(data []byte) string {
	if len(data) > d.SampleSize {
		data = data[:d.SampleSize]
	}
	if len(data) == 0 {
		return "utf-8"
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result.Charset == "" || result.Confidence < d.MinConfidence {
		return "utf-8"
	}

	return strings.ToLower(result.Charset)
}

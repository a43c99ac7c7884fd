package chardet_test

import (
	"strings"
	"testing"

	"github.com/sheetmill/sheetmill/chardet"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectEncoding(t *testing.T) {
	t.Parallel()

	t.Run("empty input falls back to utf-8", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDetector()

		assert.Equal(t, "utf-8", d.DetectEncoding(nil))
		assert.Equal(t, "utf-8", d.DetectEncoding([]byte{}))
	})

	t.Run("multibyte utf-8 text detects as utf-8", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDetector()
		text := strings.Repeat("zażółć gęślą jaźń, übergrößen, naïveté\n", 50)

		assert.Equal(t, "utf-8", d.DetectEncoding([]byte(text)))
	})

	t.Run("utf-16le BOM detects as utf-16le", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDetector()
		data := []byte{0xFF, 0xFE, 'h', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0}

		assert.Equal(t, "utf-16le", d.DetectEncoding(data))
	})

	t.Run("low-confidence guesses fall back to utf-8", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDetector()
		d.MinConfidence = 101

		assert.Equal(t, "utf-8", d.DetectEncoding([]byte("a,b,c\n1,2,3\n")))
	})

	t.Run("never returns an empty label", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDetector()
		junk := []byte{0x00, 0xFF, 0x13, 0x37, 0x00, 0xFE, 0x80, 0x81}

		assert.NotEmpty(t, d.DetectEncoding(junk))
	})

	t.Run("sample bound is applied before detection", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDetector()
		d.SampleSize = 0
		data := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}

		assert.Equal(t, "utf-8", d.DetectEncoding(data))
	})
}

package mock

import (
	"github.com/sheetmill/sheetmill"
)

var _ sheetmill.TextDecoder = (*TextDecoder)(nil)

// TextDecoder is a mock implementation of sheetmill.TextDecoder.
type TextDecoder struct {
	DecodeFn func(data []byte, label string) string
}

func (d *TextDecoder) Decode(data []byte, label string) string {
	return d.DecodeFn(data, label)
}

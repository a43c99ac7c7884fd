package charset

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/sheetmill/sheetmill"
)

// Ensure Decoder implements sheetmill.TextDecoder at compile time.
var _ sheetmill.TextDecoder = (*Decoder)(nil)

// Decoder converts raw bytes to UTF-8 text using WHATWG encoding labels.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode converts data to a UTF-8 string using the encoding named by label.
// Unknown labels degrade to a UTF-8 read of the raw bytes. Undecodable input
// is replaced with U+FFFD and a leading byte order mark is dropped, so the
// result is always valid UTF-8 and decoding never fails.
func (d *Decoder) Decode(data []byte, label string) string {
	if len(data) == 0 {
		return ""
	}

	text := string(data)
	if enc, _ := charset.Lookup(label); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			text = string(decoded)
		}
	}

	text = strings.ToValidUTF8(text, string(utf8.RuneError))
	return strings.TrimPrefix(text, "\uFEFF")
}

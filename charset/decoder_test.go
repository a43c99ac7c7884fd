package charset_test

import (
	"testing"

	"github.com/sheetmill/sheetmill/charset"
	"github.com/stretchr/testify/assert"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	d := charset.NewDecoder()

	t.Run("utf-8 passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "héllo, świat", d.Decode([]byte("héllo, świat"), "utf-8"))
	})

	t.Run("windows-1252 bytes decode to their runes", func(t *testing.T) {
		t.Parallel()

		data := []byte{'c', 'a', 'f', 0xE9, ' ', 0x93, 'x', 0x94}

		assert.Equal(t, "café “x”", d.Decode(data, "windows-1252"))
	})

	t.Run("utf-16le decodes and drops the BOM", func(t *testing.T) {
		t.Parallel()

		data := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}

		assert.Equal(t, "hi", d.Decode(data, "utf-16le"))
	})

	t.Run("invalid bytes are replaced, never reported", func(t *testing.T) {
		t.Parallel()

		data := []byte{'a', 0xFF, 0xFE, 'b'}

		assert.Equal(t, "a��b", d.Decode(data, "utf-8"))
	})

	t.Run("unknown label degrades to a utf-8 read", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "plain", d.Decode([]byte("plain"), "no-such-encoding"))
	})

	t.Run("empty input yields empty text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", d.Decode(nil, "utf-8"))
	})
}

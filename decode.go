package sheetmill

// TextDecoder decodes raw bytes into UTF-8 text.
type TextDecoder interface {
	// Decode converts data to a UTF-8 string using the encoding identified
	// by label. Undecodable bytes are replaced with U+FFFD rather than
	// reported, so decoding is total; data loss is silent.
	Decode(data []byte, label string) string
}

package sheetmill

// EncodingDetector infers the character encoding of raw file content.
type EncodingDetector interface {
	// DetectEncoding examines at most a bounded prefix of data and returns
	// an encoding label (e.g. "utf-8", "windows-1252"). It never fails:
	// when detection is impossible or the detector's confidence is too
	// low, it returns "utf-8".
	DetectEncoding(data []byte) string
}

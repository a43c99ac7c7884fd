package sheetmill

import "strings"

// ContentKind routes a file down the markup or delimited-text pipeline.
type ContentKind int

const (
	// KindDelimited treats lines as records split on an inferred delimiter.
	KindDelimited ContentKind = iota
	// KindMarkup treats the content as HTML/XML-like tagged text.
	KindMarkup
)

// String returns a human-readable name for the content kind.
func (k ContentKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindDelimited:
		return "delimited"
	default:
		return "unknown"
	}
}

// ClassifyPrefixLen is the number of leading characters examined when
// classifying content.
const ClassifyPrefixLen = 1000

// markupTokens mark content as markup. A single case-insensitive hit decides.
var markupTokens = []string{"<table", "<tr", "<td", "<html", "<?xml"}

// ClassifyContent decides whether decoded text is markup or delimited text by
// scanning its first ClassifyPrefixLen characters for markup tokens. Anything
// not recognizably markup is treated as delimited text, the more forgiving
// path.
func ClassifyContent(text string) ContentKind {
	prefix := strings.ToLower(prefixRunes(text, ClassifyPrefixLen))
	for _, token := range markupTokens {
		if strings.Contains(prefix, token) {
			return KindMarkup
		}
	}
	return KindDelimited
}

// prefixRunes returns the first n runes of s without decoding the remainder.
func prefixRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

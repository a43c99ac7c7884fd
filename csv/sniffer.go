package csv

import "strings"

// DefaultSampleLines is the number of leading lines examined when inferring
// a delimiter.
const DefaultSampleLines = 100

// candidates are the delimiters considered, in tie-break order.
var candidates = []rune{',', ';', '\t', '|'}

// Sniffer infers the field delimiter of delimited text.
type Sniffer struct {
	SampleLines int
}

// NewSniffer returns a Sniffer with default tunables.
func NewSniffer() *Sniffer {
	return &Sniffer{SampleLines: DefaultSampleLines}
}

// Sniff returns the candidate delimiter occurring most often in the first
// SampleLines lines of text. Exact ties resolve to the earlier candidate, so
// text without any delimiter sniffs as a comma.
func (s *Sniffer) Sniff(text string) rune {
	lines := strings.SplitN(text, "\n", s.SampleLines+1)
	if len(lines) > s.SampleLines {
		lines = lines[:s.SampleLines]
	}

	counts := make([]int, len(candidates))
	for _, line := range lines {
		for i, c := range candidates {
			counts[i] += strings.Count(line, string(c))
		}
	}

	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}
	return candidates[best]
}

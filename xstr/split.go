package xstr

// Split splits s on delim. Adjacent delimiters produce empty elements and
// the empty string splits into a single empty element, matching the
// unfiltered splitter this was lifted from.
func Split(s string, delim byte) []string {
	return SplitIf(s, delim, nil)
}

// SplitIf splits s on delim and keeps only the pieces keep accepts. A nil
// keep accepts everything.
func SplitIf(s string, delim byte, keep func(string) bool) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != delim {
			continue
		}
		piece := s[start:i]
		if keep == nil || keep(piece) {
			out = append(out, piece)
		}
		start = i + 1
	}
	return out
}

// SkipEmpty is a keep predicate for SplitIf that drops empty pieces.
func SkipEmpty(s string) bool {
	return len(s) > 0
}

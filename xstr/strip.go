package xstr

import "strings"

// StripPrefix returns s without prefix when present, s unchanged
// otherwise.
func StripPrefix(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

// StripSuffix returns s without suffix when present, s unchanged
// otherwise.
func StripSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}

// ConsumePrefix strips prefix from s and reports whether it was present.
func ConsumePrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// ConsumeSuffix strips suffix from s and reports whether it was present.
func ConsumeSuffix(s, suffix string) (string, bool) {
	if strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

// isSpace matches the ASCII whitespace class: space, \t, \n, \v, \f, \r.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimLeadingWhitespace returns s without leading ASCII whitespace.
func TrimLeadingWhitespace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimTrailingWhitespace returns s without trailing ASCII whitespace.
func TrimTrailingWhitespace(s string) string {
	i := len(s)
	for i > 0 && isSpace(s[i-1]) {
		i--
	}
	return s[:i]
}

// StripWhitespace trims ASCII whitespace from both ends of s.
func StripWhitespace(s string) string {
	return TrimTrailingWhitespace(TrimLeadingWhitespace(s))
}

// ReplaceCharacters returns s with every byte that occurs in remove
// replaced by replaceWith. s is returned as-is when nothing matches.
func ReplaceCharacters(s, remove string, replaceWith byte) string {
	i := indexAnyByte(s, remove)
	if i < 0 {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if strings.IndexByte(remove, b[i]) >= 0 {
			b[i] = replaceWith
		}
	}
	return string(b)
}

func indexAnyByte(s, chars string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

package xstr

// lower folds a single ASCII byte. Bytes outside 'A'-'Z' pass through,
// including high-bit bytes from multi-byte encodings.
func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualsIgnoreCase reports whether a and b are equal, ignoring ASCII case.
func EqualsIgnoreCase(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

// StartsWithIgnoreCase reports whether s begins with prefix, ignoring
// ASCII case. Every string starts with the empty prefix.
func StartsWithIgnoreCase(s, prefix string) bool {
	return len(s) >= len(prefix) && EqualsIgnoreCase(s[:len(prefix)], prefix)
}

// EndsWithIgnoreCase reports whether s ends with suffix, ignoring ASCII
// case.
func EndsWithIgnoreCase(s, suffix string) bool {
	return len(s) >= len(suffix) && EqualsIgnoreCase(s[len(s)-len(suffix):], suffix)
}

package xraw

// Basename returns the part of path after the last '/' or '\' separator,
// scanning raw bytes from the end of the string. Both separators are
// always recognized, regardless of host platform, so call sites compiled
// with Windows-style paths shorten correctly everywhere. The result is a
// substring of the input; nothing is allocated.
//
// filepath.Base is not a substitute: it is OS-conditional and never treats
// '\' as a separator on unix.
func Basename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}

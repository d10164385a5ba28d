//go:build !unix

package xraw

import "os"

func writeStderr(p []byte) {
	_, _ = os.Stderr.Write(p)
}

// 134 mirrors the unix SIGABRT exit status so callers see one code
// everywhere.
func terminate() {
	os.Exit(134)
}

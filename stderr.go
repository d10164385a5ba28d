package xraw

import "io"

// sink redirects output in tests; nil means the real stderr path. The
// production write stays a direct call into writeStderr so the line buffer
// does not escape to the heap through an interface.
var sink io.Writer

// abortProcess is a seam for the in-process fatal tests; the real
// implementation raises SIGABRT (or exits 134 where signals don't exist).
var abortProcess = terminate

// SafeWriteToStderr writes b directly to the process's standard error
// stream in a safe, low-level manner: unbuffered, without allocating, and
// without locks, using a raw write on the stderr file descriptor where the
// platform allows. Failed and short writes are not reported; raw output is
// best effort.
func SafeWriteToStderr(b []byte) {
	safeWriteToStderr(b)
}

func safeWriteToStderr(b []byte) {
	if w := sink; w != nil {
		_, _ = w.Write(b)
		return
	}
	writeStderr(b)
}

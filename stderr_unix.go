//go:build unix

package xraw

import (
	"os"

	"golang.org/x/sys/unix"
)

// writeStderr writes to file descriptor 2 with the write syscall directly,
// sidestepping os.Stderr's locking and any stdio buffering. EINTR and
// short writes are retried; any other error ends the attempt.
func writeStderr(p []byte) {
	for len(p) > 0 {
		n, err := unix.Write(2, p)
		if n > 0 {
			p = p[n:]
			continue
		}
		if err == unix.EINTR {
			continue
		}
		return
	}
}

// terminate raises SIGABRT so the exit status records an abort rather than
// a clean exit. If a handler swallows the signal, fall back to the shell
// convention for a SIGABRT death.
func terminate() {
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)
	os.Exit(134)
}

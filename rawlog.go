package xraw

import (
	"runtime"

	"github.com/trickstertwo/xclock"
)

// logBufSize bounds a single raw line, prefix and trailing newline
// included. Anything longer is silently chopped.
const logBufSize = 3000

// Logf formats one line and writes it to stderr without allocating or
// taking locks, reporting the caller's file and line. SeverityFatal
// terminates the process after the write; no other outcome is observable
// by the caller.
func Logf(s Severity, format string, args ...any) {
	file, line := location(2)
	emit(s, file, line, format, args)
}

// Emit is Logf with an explicit source location, for callers that forward
// on behalf of someone else.
func Emit(s Severity, file string, line int, format string, args ...any) {
	emit(s, file, line, format, args)
}

// Severity shorthands, the usual way call sites spell it:
//
//	xraw.Errorf("failed foo with %d: %s", status, err)

func Infof(format string, args ...any) {
	file, line := location(2)
	emit(SeverityInfo, file, line, format, args)
}

func Warningf(format string, args ...any) {
	file, line := location(2)
	emit(SeverityWarning, file, line, format, args)
}

func Errorf(format string, args ...any) {
	file, line := location(2)
	emit(SeverityError, file, line, format, args)
}

// Fatalf logs the message and then terminates the process. It never
// returns.
func Fatalf(format string, args ...any) {
	file, line := location(2)
	emit(SeverityFatal, file, line, format, args)
}

// Check is the raw-path assertion: if cond is false it logs at
// SeverityFatal and terminates the process. message should be a plain
// string so that nothing is computed when the condition holds.
func Check(cond bool, message string) {
	if cond {
		return
	}
	file, line := location(2)
	emit(SeverityFatal, file, line, "Check failed: %s", []any{message})
}

func location(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return file, line
}

// emit is the single funnel behind every logging entry point.
//
// The line buffer lives on the caller's stack and every step below is
// bounded: no heap allocation, no locks, at most one write syscall. That
// keeps the whole path safe from early initialization, from code holding
// runtime-internal locks, and from signal handlers.
func emit(s Severity, file string, line int, format string, args []any) {
	s = NormalizeSeverity(s)
	file = Basename(file)

	var buf [logBufSize]byte
	lb := lineBuffer{buf: buf[:0]}

	doWrite := true
	prefixEnd := 0
	if h := prefixHook.Load(); h != nil {
		n, ok := (*h)(s, file, line, buf[:])
		if n < 0 {
			n = 0
		}
		if n > logBufSize {
			n = logBufSize
		}
		lb.buf = buf[:n]
		prefixEnd = n
		doWrite = ok
	} else {
		lb.writePrefix(s, file, line)
		prefixEnd = len(lb.buf)
	}

	// A suppressed non-fatal message costs nothing further. Fatal still
	// formats so the abort hook sees the complete line.
	if doWrite || s == SeverityFatal {
		lb.formatf(format, args)
		lb.terminate()
	}

	if doWrite {
		safeWriteToStderr(lb.buf)
	}

	if s == SeverityFatal {
		if h := abortHook.Load(); h != nil {
			(*h)(file, line, lb.buf, prefixEnd)
		}
		abortProcess()
	}
}

// writePrefix emits the default prefix, e.g. "E0821 211317 foo.go:123] RAW: ".
// The timestamp comes from xclock so frozen clocks flow through in tests.
func (lb *lineBuffer) writePrefix(s Severity, file string, line int) {
	t := xclock.Now()
	_, month, day := t.Date()
	hour, min, sec := t.Clock()
	lb.writeByte(s.Char())
	lb.writePad2(int(month))
	lb.writePad2(day)
	lb.writeByte(' ')
	lb.writePad2(hour)
	lb.writePad2(min)
	lb.writePad2(sec)
	lb.writeByte(' ')
	lb.writeString(file)
	lb.writeByte(':')
	lb.writeInt64(int64(line))
	lb.writeString("] RAW: ")
}

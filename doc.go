// Package xraw provides thread-safe logging routines that do not allocate
// memory or acquire locks, and can therefore be used by low-level memory
// allocation, synchronization, and signal-handling code that cannot depend
// on a full logging framework.
//
// Compared to a normal structured logger:
//   - lines go straight and ONLY to stderr, unbuffered
//   - messages use an explicit printf-style format and argument list
//   - really long messages are silently chopped to a fixed buffer
//
// Usage:
//
//	xraw.Errorf("failed foo with %d: %s", status, err)
//
// writes an almost standard log line to stderr only:
//
//	E0821 211317 foo.go:123] RAW: failed foo with 22: bad file
//
// Logging at SeverityFatal terminates the process after the write.
//
// A higher-level logging framework can take ownership of raw output via
// RegisterPrefixHook and RegisterAbortHook; see the adapter subpackages
// for ready-made zerolog and zap bridges.
package xraw

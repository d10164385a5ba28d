package zap

import (
	"strconv"
	"strings"

	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xraw"
)

// Install hands raw logging over to l: raw lines the core would not log
// are suppressed, surviving lines carry a zap-console-style prefix, and a
// fatal raw line is mirrored into l (and flushed) immediately before the
// process aborts.
//
// The raw logger's hook slots are process-wide and single-registration:
// call Install once, during initialization. It panics if another hook
// owner registered first.
func Install(l *zap.Logger) {
	xraw.RegisterPrefixHook(prefixHook(l))
	xraw.RegisterAbortHook(abortHook(l))
}

func prefixHook(l *zap.Logger) xraw.PrefixHook {
	return func(s xraw.Severity, file string, line int, buf []byte) (int, bool) {
		if !l.Core().Enabled(mapLevel(s)) {
			return 0, false
		}
		return appendPrefix(buf, s, file, line), true
	}
}

// abortHook mirrors the fatal line into structured output and flushes.
// The process is about to terminate, so allocating here is acceptable.
func abortHook(l *zap.Logger) xraw.AbortHook {
	return func(file string, line int, buf []byte, prefixEnd int) {
		msg := buf
		if prefixEnd > 0 && prefixEnd <= len(msg) {
			msg = msg[prefixEnd:]
		}
		l.Error(strings.TrimSuffix(string(msg), "\n"),
			zap.String("file", file),
			zap.Int("line", line))
		_ = l.Sync()
	}
}

// appendPrefix writes "<ts>\t<LEVEL>\t<file>:<line>\t" the way zap's
// console encoder lays a line out, building in place inside buf so the raw
// path stays allocation-free.
func appendPrefix(buf []byte, s xraw.Severity, file string, line int) int {
	b := buf[:0]
	b = xclock.Now().UTC().AppendFormat(b, "2006-01-02T15:04:05.000Z0700")
	b = append(b, '\t')
	b = append(b, mapLevel(s).CapitalString()...)
	b = append(b, '\t')
	b = append(b, file...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(line), 10)
	b = append(b, '\t')
	// copy rescues the prefix if append ever outgrew buf; no-op otherwise.
	return copy(buf, b)
}

// mapLevel converts xraw.Severity to zapcore.Level. Fatal maps to
// ErrorLevel: zap's own FatalLevel would exit the process from inside the
// core, and termination belongs to xraw.
func mapLevel(s xraw.Severity) zapcore.Level {
	switch s {
	case xraw.SeverityInfo:
		return zapcore.InfoLevel
	case xraw.SeverityWarning:
		return zapcore.WarnLevel
	case xraw.SeverityError:
		return zapcore.ErrorLevel
	case xraw.SeverityFatal:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

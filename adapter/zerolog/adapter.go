package zerolog

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xraw"
)

// Install hands raw logging over to l: raw lines below l's level are
// suppressed, surviving lines carry a console-style prefix matching
// zerolog's, and a fatal raw line is mirrored into l as a structured event
// immediately before the process aborts.
//
// The raw logger's hook slots are process-wide and single-registration:
// call Install once, during initialization. It panics if another hook
// owner registered first.
func Install(l zerolog.Logger) {
	xraw.RegisterPrefixHook(prefixHook(l))
	xraw.RegisterAbortHook(abortHook(l))
}

func prefixHook(l zerolog.Logger) xraw.PrefixHook {
	return func(s xraw.Severity, file string, line int, buf []byte) (int, bool) {
		if mapLevel(s) < l.GetLevel() {
			return 0, false
		}
		return appendPrefix(buf, s, file, line), true
	}
}

// abortHook mirrors the fatal line into structured output. The process is
// about to terminate, so allocating here is acceptable.
func abortHook(l zerolog.Logger) xraw.AbortHook {
	return func(file string, line int, buf []byte, prefixEnd int) {
		msg := buf
		if prefixEnd > 0 && prefixEnd <= len(msg) {
			msg = msg[prefixEnd:]
		}
		l.WithLevel(zerolog.FatalLevel).
			Str("file", file).
			Int("line", line).
			Msg(strings.TrimSuffix(string(msg), "\n"))
	}
}

// appendPrefix writes "<ts> <LVL> <file>:<line> > " in the spirit of
// zerolog.ConsoleWriter, building in place inside buf so the raw path
// stays allocation-free.
func appendPrefix(buf []byte, s xraw.Severity, file string, line int) int {
	b := buf[:0]
	b = xclock.Now().UTC().AppendFormat(b, time.RFC3339)
	b = append(b, ' ')
	b = append(b, levelTag(s)...)
	b = append(b, ' ')
	b = append(b, file...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(line), 10)
	b = append(b, " > "...)
	// A pathological file name could overflow buf and make append fall
	// back to a fresh array; copy rescues whatever fits and is a no-op
	// when b still aliases buf.
	return copy(buf, b)
}

// mapLevel converts xraw.Severity to zerolog.Level for the suppression
// gate. Fatal maps to FatalLevel only for gating; emission of the fatal
// event goes through WithLevel, which never exits (xraw owns termination).
func mapLevel(s xraw.Severity) zerolog.Level {
	switch s {
	case xraw.SeverityInfo:
		return zerolog.InfoLevel
	case xraw.SeverityWarning:
		return zerolog.WarnLevel
	case xraw.SeverityError:
		return zerolog.ErrorLevel
	case xraw.SeverityFatal:
		return zerolog.FatalLevel
	}
	return zerolog.InfoLevel
}

func levelTag(s xraw.Severity) string {
	switch s {
	case xraw.SeverityInfo:
		return "INF"
	case xraw.SeverityWarning:
		return "WRN"
	case xraw.SeverityError:
		return "ERR"
	case xraw.SeverityFatal:
		return "FTL"
	}
	return "???"
}

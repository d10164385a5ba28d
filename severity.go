package xraw

// Severity classifies a raw log message. Four levels are defined; logging
// at SeverityFatal terminates the process, the other levels carry no
// special semantics.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

// Severities returns all standard severities, ordered from least to most
// severe.
func Severities() [4]Severity {
	return [4]Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityFatal}
}

// String returns the all-caps name of s ("INFO" .. "FATAL"), or "UNKNOWN"
// for out-of-range values.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Char returns the single-letter tag used in log line prefixes, or '?' for
// out-of-range values.
func (s Severity) Char() byte {
	switch s {
	case SeverityInfo:
		return 'I'
	case SeverityWarning:
		return 'W'
	case SeverityError:
		return 'E'
	case SeverityFatal:
		return 'F'
	}
	return '?'
}

// NormalizeSeverity maps out-of-range values back into the standard set.
// Values below SeverityInfo normalize to SeverityInfo; values above
// SeverityFatal normalize to SeverityError, NOT SeverityFatal, so a
// malformed severity code can never terminate the process.
func NormalizeSeverity(s Severity) Severity {
	if s < SeverityInfo {
		return SeverityInfo
	}
	if s > SeverityFatal {
		return SeverityError
	}
	return s
}

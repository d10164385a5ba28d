package zerolog

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xraw"
)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	old := xclock.Default()
	xclock.SetDefault(xclock.NewFrozen(at))
	t.Cleanup(func() { xclock.SetDefault(old) })
}

func TestMapLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, mapLevel(xraw.SeverityInfo))
	assert.Equal(t, zerolog.WarnLevel, mapLevel(xraw.SeverityWarning))
	assert.Equal(t, zerolog.ErrorLevel, mapLevel(xraw.SeverityError))
	assert.Equal(t, zerolog.FatalLevel, mapLevel(xraw.SeverityFatal))
}

func TestPrefixHookGatesOnLevel(t *testing.T) {
	l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
	h := prefixHook(l)
	buf := make([]byte, 3000)

	n, ok := h(xraw.SeverityInfo, "x.go", 7, buf)
	assert.False(t, ok)
	assert.Zero(t, n)

	n, ok = h(xraw.SeverityError, "x.go", 7, buf)
	assert.True(t, ok)
	assert.Positive(t, n)
}

func TestPrefixHookFormat(t *testing.T) {
	freezeClock(t, time.Date(2025, 8, 21, 21, 13, 17, 0, time.UTC))

	l := zerolog.New(io.Discard).Level(zerolog.InfoLevel)
	h := prefixHook(l)
	buf := make([]byte, 3000)

	n, ok := h(xraw.SeverityWarning, "thing.go", 42, buf)
	require.True(t, ok)
	assert.Equal(t, "2025-08-21T21:13:17Z WRN thing.go:42 > ", string(buf[:n]))
}

func TestAbortHookMirrorsFatal(t *testing.T) {
	var out bytes.Buffer
	l := zerolog.New(&out)
	h := abortHook(l)

	line := []byte("PFX going down\n")
	h("die.go", 55, line, 4)

	got := out.String()
	assert.Contains(t, got, `"level":"fatal"`)
	assert.Contains(t, got, `"file":"die.go"`)
	assert.Contains(t, got, `"line":55`)
	assert.Contains(t, got, `"message":"going down"`)
}

func TestAbortHookBogusPrefixEnd(t *testing.T) {
	var out bytes.Buffer
	h := abortHook(zerolog.New(&out))

	h("x.go", 1, []byte("whole line\n"), 999)
	assert.Contains(t, out.String(), `"message":"whole line"`)
}

func TestInstall(t *testing.T) {
	l := zerolog.New(io.Discard).Level(zerolog.Disabled)
	require.NotPanics(t, func() { Install(l) })

	// Wired end to end: a disabled backend suppresses the raw write.
	xraw.Emit(xraw.SeverityInfo, "z.go", 1, "dropped")
}

package xraw

import (
	"reflect"
	"sync/atomic"
)

// PrefixHook customizes raw log output. It is called for every emit with
// the message's severity, source basename and line, and the whole line
// buffer. The hook writes its prefix into the front of buf and returns the
// number of bytes written plus whether the message should be written to
// stderr at all. Fatal messages terminate the process even when the hook
// suppresses the write.
//
// The raw logging system does not allocate memory or grab locks, and hooks
// run on that same path: they must not allocate, block, or panic.
type PrefixHook func(s Severity, file string, line int, buf []byte) (n int, emit bool)

// AbortHook is called when a fatal message is logged, immediately before
// the process terminates. buf holds the formatted line and prefixEnd is
// the offset of the first non-prefix byte. The hook may flush diagnostics;
// it cannot prevent termination.
type AbortHook func(file string, line int, buf []byte, prefixEnd int)

// Hook slots are process-wide, written at most once via CAS against the
// nil sentinel and read lock-free on every emit. Registration belongs in
// single-threaded initialization, before concurrent use begins.
var (
	prefixHook atomic.Pointer[PrefixHook]
	abortHook  atomic.Pointer[AbortHook]
)

// RegisterPrefixHook installs fn as the process-wide prefix hook. Only one
// hook may ever be installed: a second registration with a different
// function is a static wiring mistake and panics. Re-registering the same
// function is a no-op.
func RegisterPrefixHook(fn PrefixHook) {
	if fn == nil {
		panic("xraw: RegisterPrefixHook called with nil hook")
	}
	p := &fn
	if prefixHook.CompareAndSwap(nil, p) {
		return
	}
	if sameFunc(*prefixHook.Load(), fn) {
		return
	}
	panic("xraw: prefix hook already registered")
}

// RegisterAbortHook installs fn as the process-wide abort hook, with the
// same single-registration contract as RegisterPrefixHook.
func RegisterAbortHook(fn AbortHook) {
	if fn == nil {
		panic("xraw: RegisterAbortHook called with nil hook")
	}
	p := &fn
	if abortHook.CompareAndSwap(nil, p) {
		return
	}
	if sameFunc(*abortHook.Load(), fn) {
		return
	}
	panic("xraw: abort hook already registered")
}

// sameFunc reports whether two function values share a code pointer, the
// closest Go gets to comparing functions for identity.
func sameFunc(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

//go:build unix

package xraw

import (
	"os"
	"os/exec"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

// The fatal path must really terminate the process, so it is exercised
// end to end in a child copy of the test binary.
func TestFatalTerminatesProcess(t *testing.T) {
	if os.Getenv("XRAW_FATAL_CHILD") == "1" {
		Fatalf("boom %d", 42)
		t.Fatal("Fatalf returned") // unreachable
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalTerminatesProcess$")
	cmd.Env = append(os.Environ(), "XRAW_FATAL_CHILD=1")
	out, err := cmd.CombinedOutput()

	require.Error(t, err, "child must not exit cleanly")
	var ee *exec.ExitError
	require.ErrorAs(t, err, &ee)

	ws, ok := ee.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	if ws.Signaled() {
		require.Equal(t, syscall.SIGABRT, ws.Signal())
	} else {
		require.Equal(t, 134, ws.ExitStatus())
	}

	require.Contains(t, string(out), "] RAW: boom 42")
	require.False(t, strings.Contains(string(out), "Fatalf returned"))
}

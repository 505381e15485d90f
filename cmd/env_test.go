// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> extension commands -> julian validators ->
// output formatting -> exit codes.
//
// The core calendar logic has its own unit tests in internal/julian.
// These tests cover what only the binary can prove: flag handling, JSON
// output, config persistence, and the verdict-driven exit status.
//
// Each testEnv gets its own HOME so the global config and the audit log
// land in a temp directory, never in the developer's real ~/.datecheck.

package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the datecheck binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "datecheck-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "datecheck"
		if os.PathSeparator == '\\' {
			binaryName = "datecheck.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	binary string
}

// newTestEnv creates a temporary directory to run datecheck in, with
// HOME pointed at it so config and audit log stay isolated.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()

	return &testEnv{t: t, dir: dir, binary: binary}
}

// run executes datecheck with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("datecheck %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes datecheck and returns stdout plus any execution error.
// An invalid verdict surfaces here as an *exec.ExitError with status 1.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.dir)
	out, err := cmd.Output()
	return string(out), err
}

// contains asserts that output contains the expected substring.
func (e *testEnv) contains(out, want string) {
	e.t.Helper()
	assert.Contains(e.t, out, want)
}

// exitsInvalid asserts that the command reported an invalid verdict via
// exit status 1 (not a usage or runtime error).
func (e *testEnv) exitsInvalid(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err == nil {
		e.t.Fatalf("datecheck %v exited 0, want exit status 1 for invalid verdict", args)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		e.t.Fatalf("datecheck %v: %v, want exit status 1", args, err)
	}
	// Invalid verdicts still print a verdict; usage errors do not.
	if !strings.Contains(out, "invalid") && !strings.Contains(out, `"valid":false`) {
		e.t.Fatalf("datecheck %v output %q does not look like a verdict", args, out)
	}
	return out
}

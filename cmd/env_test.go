// Testing Strategy:
//
// The cmd/ package contains CLI integration tests that build the real binary
// and run it in a temporary project directory. This exercises flag parsing,
// path resolution, exit codes and console output together. HOME points into
// the temp directory so global config and the audit log never touch the
// developer's machine.

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
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the palette binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "palette-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "palette"
		if os.PathSeparator == '\\' {
			binaryName = "palette.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

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

// Default locations relative to the project directory.
var (
	defaultPalette = filepath.Join("src", "assets", "colors", "palette.jsonc")
	defaultOutput  = filepath.Join("src", "styles", "variables.css")
)

const testPalette = `{
  // Brand
  "purple": {
    "plum": "#673147",
    "lilac": "#C8A2C8"
  },
  /* Neutrals */
  "gray": {
    "white": "#FFFFFF",
    "black": "#000000"
  }
}`

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	binary string
	env    []string
}

// newTestEnv creates an empty project directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	env := []string{"HOME=" + home, "NO_COLOR=1"}
	for _, kv := range os.Environ() {
		switch {
		case strings.HasPrefix(kv, "HOME="),
			strings.HasPrefix(kv, EnvPalette+"="),
			strings.HasPrefix(kv, EnvOutput+"="),
			strings.HasPrefix(kv, "FORCE_COLOR="):
			continue
		}
		env = append(env, kv)
	}
	return &testEnv{t: t, dir: dir, binary: buildBinary(t), env: env}
}

// withPalette writes content to the default palette location.
func (e *testEnv) withPalette(content string) *testEnv {
	e.t.Helper()
	e.write(defaultPalette, content)
	return e
}

// write creates a file relative to the project directory.
func (e *testEnv) write(rel, content string) {
	e.t.Helper()
	path := filepath.Join(e.dir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
}

// read returns a file relative to the project directory.
func (e *testEnv) read(rel string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, rel))
	require.NoError(e.t, err)
	return string(data)
}

// run executes palette with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, code := e.runCode(args...)
	if code != 0 {
		e.t.Fatalf("palette %v exited %d\noutput: %s", args, code, out)
	}
	return out
}

// runCode executes palette and returns combined output and exit status.
func (e *testEnv) runCode(args ...string) (string, int) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.t.Fatalf("palette %v: %v", args, err)
		}
		return string(out), exitErr.ExitCode()
	}
	return string(out), 0
}

// runStdout executes palette and returns stdout only.
func (e *testEnv) runStdout(args ...string) string {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	out, err := cmd.Output()
	require.NoError(e.t, err, "palette %v", args)
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript_MissingScript(t *testing.T) {
	runner := NewRunner("python3", t.TempDir())

	err := runner.RunScript(context.Background(), "scripts/does_not_exist.py")
	assert.ErrorIs(t, err, ErrScriptNotFound)

	err = runner.RunScript(context.Background(), "")
	assert.ErrorIs(t, err, ErrScriptNotFound)
}

// The runner hands the script to the configured interpreter with the project
// root as working directory. A shell stands in for Python here so the test
// does not depend on a Python installation.
func TestRunScript_RunsFromProjectRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	projectRoot := t.TempDir()
	script := filepath.Join(projectRoot, "scripts", "touch_marker.sh")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0755))
	require.NoError(t, os.WriteFile(script, []byte("touch marker.txt\n"), 0755))

	runner := NewRunner("sh", projectRoot)
	require.NoError(t, runner.RunScript(context.Background(), "scripts/touch_marker.sh"))

	_, err := os.Stat(filepath.Join(projectRoot, "marker.txt"))
	assert.NoError(t, err)
}

func TestRunScript_AbsolutePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	projectRoot := t.TempDir()
	script := filepath.Join(t.TempDir(), "noop.sh")
	require.NoError(t, os.WriteFile(script, []byte("exit 0\n"), 0755))

	runner := NewRunner("sh", projectRoot)
	assert.NoError(t, runner.RunScript(context.Background(), script))
}

func TestRunScript_FailureIsReported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	projectRoot := t.TempDir()
	script := filepath.Join(projectRoot, "fail.sh")
	require.NoError(t, os.WriteFile(script, []byte("exit 3\n"), 0755))

	runner := NewRunner("sh", projectRoot)
	err := runner.RunScript(context.Background(), "fail.sh")
	assert.Error(t, err)
}

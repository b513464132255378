package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var ErrScriptNotFound = errors.New("dataset script not found")

// Runner executes the external Python dataset scripts from the project root.
// The scripts are black boxes: they read the staged destination directories
// and write their artifacts under data/. The runner only checks the script
// exists and streams its output.
type Runner struct {
	PythonBinary string
	ProjectRoot  string
}

// NewRunner creates a new script runner instance
func NewRunner(pythonBinary, projectRoot string) *Runner {
	return &Runner{
		PythonBinary: pythonBinary,
		ProjectRoot:  projectRoot,
	}
}

// RunScript runs one script to completion, streaming its stdout/stderr to the
// terminal. Relative script paths resolve against the project root. The
// context cancels a run in flight (Ctrl+C from the command layer).
func (r *Runner) RunScript(ctx context.Context, script string, args ...string) error {
	if script == "" {
		return fmt.Errorf("%w: empty script path", ErrScriptNotFound)
	}

	scriptPath := script
	if !filepath.IsAbs(scriptPath) {
		scriptPath = filepath.Join(r.ProjectRoot, scriptPath)
	}

	if _, err := os.Stat(scriptPath); err != nil {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, scriptPath)
	}

	cmdArgs := append([]string{scriptPath}, args...)
	cmd := exec.CommandContext(ctx, r.PythonBinary, cmdArgs...)
	cmd.Dir = r.ProjectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("script execution failed: %w", err)
	}

	return nil
}

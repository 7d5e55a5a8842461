package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/labfluence-labs/synclaunch/internal/branding"
)

// syncArgs is the fixed argument list passed to the sync script: verbose sync.
var syncArgs = []string{"-v", "sync"}

// Launcher runs the sync script through an interpreter with an inherited
// console. Zero values fall back to the defaults: the `python` binary from
// PATH and the script sibling to the launcher executable.
type Launcher struct {
	// Interpreter is the interpreter binary, resolved through PATH.
	Interpreter string

	// Script is the path to the sync script.
	Script string

	// Stdin, Stdout, and Stderr can be set for testing; they default to the
	// process's own streams so the child inherits the console.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Output captures the result of a sync tool run.
type Output struct {
	ExitCode int
}

// SelfDir returns the absolute directory containing the running executable,
// with symlinks resolved.
func SelfDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable symlinks: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// DefaultScriptPath returns the sync script path next to the launcher binary.
func DefaultScriptPath() (string, error) {
	dir, err := SelfDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, branding.ScriptName()), nil
}

// Command resolves defaults and returns the full argument vector the launcher
// will execute, interpreter first.
func (l *Launcher) Command() ([]string, error) {
	interpreter := l.Interpreter
	if interpreter == "" {
		interpreter = "python"
	}

	script := l.Script
	if script == "" {
		p, err := DefaultScriptPath()
		if err != nil {
			return nil, err
		}
		script = p
	}

	argv := make([]string, 0, 2+len(syncArgs))
	argv = append(argv, interpreter, script)
	argv = append(argv, syncArgs...)
	return argv, nil
}

// Run executes the sync tool and blocks until it exits. The child inherits
// the configured console streams. A non-zero child exit is not an error; it
// is reported in Output.ExitCode. The error return covers launch failures:
// interpreter not on PATH, script missing, or the process failing to start.
func (l *Launcher) Run(ctx context.Context) (*Output, error) {
	argv, err := l.Command()
	if err != nil {
		return nil, err
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("interpreter %q not found: %w", argv[0], err)
	}

	script := argv[1]
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("sync script not found at %s: %w", script, err)
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)

	stdin := l.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := l.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := l.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Output{ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, fmt.Errorf("running sync tool: %w", err)
	}

	return &Output{ExitCode: 0}, nil
}

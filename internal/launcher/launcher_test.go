package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeStubInterpreter creates a shell script that records the arguments it
// received into argsFile and exits with the given code.
func writeStubInterpreter(t *testing.T, dir string, exitCode int) (stubPath, argsFile string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub interpreter requires a POSIX shell")
	}

	argsFile = filepath.Join(dir, "args.txt")
	stubPath = filepath.Join(dir, "stub-python")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\nexit %d\n", argsFile, exitCode)
	if err := os.WriteFile(stubPath, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return stubPath, argsFile
}

// writeSyncScript creates a placeholder sync script so the existence check passes.
func writeSyncScript(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "labsync.py")
	if err := os.WriteFile(path, []byte("# placeholder\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommand_FixedArguments(t *testing.T) {
	l := &Launcher{Interpreter: "python3", Script: "/opt/lab/labsync.py"}

	argv, err := l.Command()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"python3", "/opt/lab/labsync.py", "-v", "sync"}
	if len(argv) != len(want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestCommand_DefaultInterpreter(t *testing.T) {
	l := &Launcher{Script: "/opt/lab/labsync.py"}

	argv, err := l.Command()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if argv[0] != "python" {
		t.Errorf("argv[0] = %q, want %q", argv[0], "python")
	}
}

func TestRun_ChildReceivesFixedArgs(t *testing.T) {
	dir := t.TempDir()
	stub, argsFile := writeStubInterpreter(t, dir, 0)
	script := writeSyncScript(t, dir)

	var stdout, stderr bytes.Buffer
	l := &Launcher{
		Interpreter: stub,
		Script:      script,
		Stdin:       strings.NewReader(""),
		Stdout:      &stdout,
		Stderr:      &stderr,
	}

	output, err := l.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", output.ExitCode)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{script, "-v", "sync"}
	if len(got) != len(want) {
		t.Fatalf("child argv = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child argv[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	stub, _ := writeStubInterpreter(t, dir, 7)
	script := writeSyncScript(t, dir)

	l := &Launcher{
		Interpreter: stub,
		Script:      script,
		Stdin:       strings.NewReader(""),
		Stdout:      &bytes.Buffer{},
		Stderr:      &bytes.Buffer{},
	}

	output, err := l.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error (non-zero exit should not be an error): %v", err)
	}
	if output.ExitCode != 7 {
		t.Errorf("expected exit code 7, got %d", output.ExitCode)
	}
}

func TestRun_MissingScript(t *testing.T) {
	dir := t.TempDir()
	stub, _ := writeStubInterpreter(t, dir, 0)

	l := &Launcher{
		Interpreter: stub,
		Script:      filepath.Join(dir, "does-not-exist.py"),
	}

	_, err := l.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing script, got nil")
	}
	if !strings.Contains(err.Error(), "sync script not found") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRun_MissingInterpreter(t *testing.T) {
	dir := t.TempDir()
	script := writeSyncScript(t, dir)

	l := &Launcher{
		Interpreter: "definitely-not-a-real-interpreter",
		Script:      script,
	}

	_, err := l.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing interpreter, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error message: %v", err)
	}
}

package launcher

import (
	"bufio"
	"fmt"
	"io"
)

// PauseMode controls when the launcher waits for a keypress after the sync
// tool exits. The default keeps the terminal window open unconditionally so
// double-click users can read the output before the window closes.
type PauseMode string

const (
	// PauseAlways waits for acknowledgment regardless of the exit status.
	PauseAlways PauseMode = "always"
	// PauseOnError waits only when the sync tool exited non-zero or failed
	// to launch.
	PauseOnError PauseMode = "on-error"
	// PauseNever exits immediately, for runs from an existing terminal.
	PauseNever PauseMode = "never"
)

// ParsePauseMode parses a pause mode string. An empty string means PauseAlways.
func ParsePauseMode(s string) (PauseMode, error) {
	switch PauseMode(s) {
	case "":
		return PauseAlways, nil
	case PauseAlways, PauseOnError, PauseNever:
		return PauseMode(s), nil
	default:
		return "", fmt.Errorf("invalid pause mode %q: must be %q, %q, or %q", s, PauseAlways, PauseOnError, PauseNever)
	}
}

// ShouldPause reports whether the launcher should wait for acknowledgment
// given the sync tool's exit code.
func (m PauseMode) ShouldPause(exitCode int) bool {
	switch m {
	case PauseOnError:
		return exitCode != 0
	case PauseNever:
		return false
	default:
		return true
	}
}

// Pause prints the acknowledgment prompt to w and blocks until one line is
// read from r. EOF counts as acknowledgment so a closed stdin cannot hang
// the launcher.
func Pause(w io.Writer, r io.Reader) error {
	fmt.Fprint(w, "Press Enter to continue . . . ")
	_, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading acknowledgment: %w", err)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/labfluence-labs/synclaunch/internal/config"
	"github.com/labfluence-labs/synclaunch/internal/launcher"
	"github.com/spf13/cobra"
)

var (
	launchInterpreter string
	launchScript      string
	launchPause       string
	launchDryRun      bool
)

func init() {
	rootCmd.Flags().StringVar(&launchInterpreter, "interpreter", "", "Interpreter binary for the sync script (default: python from PATH)")
	rootCmd.Flags().StringVar(&launchScript, "script", "", "Path to the sync script (default: labsync.py next to the launcher)")
	rootCmd.Flags().StringVar(&launchPause, "pause", "", "When to wait for a keypress afterward: always, on-error, or never (default: always)")
	rootCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "Print the command line without running the sync tool")
}

// runLaunch is the root command: run the sync tool, then pause. Positional
// args are accepted for compatibility with the original launcher but are
// never forwarded to the sync tool.
func runLaunch(cmd *cobra.Command, args []string) error {
	config.Load()

	interpreter := launchInterpreter
	if interpreter == "" {
		interpreter = config.Get(config.KeyInterpreter)
	}
	script := launchScript
	if script == "" {
		script = config.Get(config.KeyScript)
	}
	pauseValue := launchPause
	if pauseValue == "" {
		pauseValue = config.Get(config.KeyPause)
	}

	mode, err := launcher.ParsePauseMode(pauseValue)
	if err != nil {
		return err
	}

	l := &launcher.Launcher{
		Interpreter: interpreter,
		Script:      script,
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	}

	if launchDryRun {
		argv, err := l.Command()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(argv, " "))
		return nil
	}

	// A launch failure is reported on the console like any other child
	// failure; it must not skip the pause, or a double-click session would
	// close before the message can be read.
	exitCode := 0
	output, err := l.Run(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		exitCode = 1
	} else {
		exitCode = output.ExitCode
	}

	if mode.ShouldPause(exitCode) {
		if err := launcher.Pause(cmd.OutOrStdout(), cmd.InOrStdin()); err != nil {
			return err
		}
	}

	// The sync tool's exit status is visible on the console but is not
	// propagated as the launcher's own exit code.
	return nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/labfluence-labs/synclaunch/internal/config"
	"github.com/labfluence-labs/synclaunch/internal/launcher"
	"github.com/spf13/cobra"
)

var (
	checkInterpreter bool
	checkScript      bool
	checkConfig      bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkInterpreter, "check-interpreter", false, "Verify the interpreter is resolvable on PATH")
	doctorCmd.Flags().BoolVar(&checkScript, "check-script", false, "Verify the sync script exists")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Validate the config file against its schema")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the launcher environment",
	Long:  `Run diagnostic checks on the interpreter, the sync script, and the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		anyFlag := checkInterpreter || checkScript || checkConfig
		// If no specific flag, run all checks.
		runAll := !anyFlag

		w := cmd.OutOrStdout()
		failures := 0

		if runAll || checkInterpreter {
			if err := runInterpreterCheck(w); err != nil {
				failures++
			}
		}
		if runAll || checkScript {
			if err := runScriptCheck(w); err != nil {
				failures++
			}
		}
		if runAll || checkConfig {
			if err := runConfigCheck(w); err != nil {
				failures++
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		fmt.Fprintln(w, "All checks passed.")
		return nil
	},
}

func runInterpreterCheck(w io.Writer) error {
	interpreter := config.Get(config.KeyInterpreter)
	path, err := exec.LookPath(interpreter)
	if err != nil {
		fmt.Fprintf(w, "FAIL interpreter: %q not found on PATH\n", interpreter)
		return err
	}
	fmt.Fprintf(w, "ok   interpreter: %s (%s)\n", interpreter, path)
	return nil
}

func runScriptCheck(w io.Writer) error {
	script := config.Get(config.KeyScript)
	if script == "" {
		p, err := launcher.DefaultScriptPath()
		if err != nil {
			fmt.Fprintf(w, "FAIL script: cannot resolve launcher directory: %v\n", err)
			return err
		}
		script = p
	}

	if _, err := os.Stat(script); err != nil {
		fmt.Fprintf(w, "FAIL script: %s not found\n", script)
		return err
	}
	fmt.Fprintf(w, "ok   script: %s\n", script)
	return nil
}

func runConfigCheck(w io.Writer) error {
	path := config.FilePath()
	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "FAIL config: %v\n", err)
		return err
	}
	if !result.Valid {
		fmt.Fprintf(w, "FAIL config: %s has %d issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "     %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("config file invalid")
	}
	fmt.Fprintf(w, "ok   config: %s\n", path)
	return nil
}

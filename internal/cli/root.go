package cli

import (
	"fmt"
	"os"

	"github.com/labfluence-labs/synclaunch/internal/branding"
	"github.com/labfluence-labs/synclaunch/internal/config"
	"github.com/labfluence-labs/synclaunch/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` starts the labfluence sync tool (labsync.py) with a fixed
verbose-sync invocation and keeps the terminal open afterward so the output
stays readable when the launcher is started from a double-click.

Any arguments given to the launcher itself are ignored; the sync tool always
receives the same fixed command line.`,
	// The original launcher accepted (and discarded) positional arguments, so
	// stray args must not be an error here either.
	Args:          cobra.ArbitraryArgs,
	RunE:          runLaunch,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip the banner for commands that manage their own version output.
		name := cmd.Name()
		if name == "update" || name == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

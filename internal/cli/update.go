package cli

import (
	"fmt"
	"time"

	"github.com/labfluence-labs/synclaunch/internal/config"
	"github.com/labfluence-labs/synclaunch/internal/updater"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Long: `Check GitHub Releases for a newer launcher version and print the download
URL for this platform. The binary is not replaced automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		u := updater.New(buildVersion)
		release, err := u.CheckLatestVersion()
		if err != nil {
			return fmt.Errorf("checking latest release: %w", err)
		}

		fmt.Fprintf(w, "Current version: %s\n", buildVersion)
		fmt.Fprintf(w, "Latest release:  %s\n", release.Version)

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			// Dev builds don't parse as semver; report the latest release
			// without claiming an update is needed.
			fmt.Fprintf(w, "Cannot compare versions (%v); see %s\n", err, release.HTMLURL)
			return nil
		}

		// Refresh the cache so the startup banner agrees with this check.
		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			LatestVersion:   release.Version,
			CurrentVersion:  buildVersion,
			CheckedAt:       time.Now(),
			UpdateAvailable: available,
		})

		if !available {
			fmt.Fprintln(w, "Already up to date.")
			return nil
		}

		asset, err := updater.AssetForPlatform(release.Assets)
		if err != nil {
			fmt.Fprintf(w, "Update available; no prebuilt archive for this platform. See %s\n", release.HTMLURL)
			return nil
		}

		fmt.Fprintf(w, "Download: %s\n", asset.DownloadURL)
		return nil
	},
}

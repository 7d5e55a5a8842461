// Package updater checks GitHub Releases for newer synclaunch versions.
// A daily-cached version check powers the startup banner; the update command
// reports the download URL for the current platform. The binary is not
// replaced in place.
package updater

// Package cli defines the Cobra command tree for the synclaunch CLI. Each
// file in this package registers one top-level command (doctor, config,
// update, version) with the root command; the root command itself runs the
// launcher. Command implementations delegate to internal packages for
// business logic and only handle flag parsing, I/O formatting, and user
// interaction.
package cli

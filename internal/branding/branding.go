// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary via go:embed, with hard defaults as a fallback.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ScriptName  string `yaml:"script_name"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "synclaunch",
			DisplayName: "Synclaunch",
			Description: "Launcher for the labfluence sync tool",
			HomeDir:     ".synclaunch",
			EnvPrefix:   "SYNCLAUNCH",
			ScriptName:  "labsync.py",
			GitHubRepo:  "labfluence-labs/synclaunch",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "synclaunch").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Synclaunch").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".synclaunch").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SYNCLAUNCH").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ScriptName returns the file name of the sync script the launcher runs
// (e.g., "labsync.py").
func ScriptName() string { load(); return defaults.ScriptName }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("PAUSE") → "SYNCLAUNCH_PAUSE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

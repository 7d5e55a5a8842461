// Package config manages user-level settings stored at ~/.synclaunch/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// interpreter binary, the sync script path, and the pause behavior, and
// validates the config file against an embedded JSON schema.
package config

// Package config manages user-level settings stored at ~/.speculate/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// rules.include and rules.exclude, the default glob filters applied when the
// install command is run without flags.
package config

// Package installer orchestrates the install and uninstall sequences over
// the settings, header, and rules packages. Both directions are idempotent
// filesystem edits; there is no rollback because re-running repairs state.
package installer

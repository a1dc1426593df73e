// Package rules links agent rule files from docs/general/agent-rules/ into
// .cursor/rules/ as relative symlinks with a .mdc extension, filtered by
// include/exclude glob patterns. Teardown removes only symlink entries, so
// rule files users author directly in .cursor/rules/ survive an uninstall.
package rules

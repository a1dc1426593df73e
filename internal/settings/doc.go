// Package settings manages the project-level bookkeeping file at
// .speculate/settings.yml. Updates merge a small fixed set of keys (update
// timestamp, CLI version, docs version derived from the copier answers file)
// over whatever already exists, so keys added by users or other tools are
// never dropped.
package settings

package installer

import (
	"fmt"

	"github.com/speculate-labs/speculate/internal/header"
	"github.com/speculate-labs/speculate/internal/project"
	"github.com/speculate-labs/speculate/internal/rules"
	"github.com/speculate-labs/speculate/internal/settings"
)

// Options configures an install pass.
type Options struct {
	// Version is the running CLI version, recorded in the settings file.
	Version string
	// Include and Exclude are glob patterns filtering which rule files
	// get linked. An empty Include links everything.
	Include []string
	Exclude []string
}

// Report aggregates what an install or uninstall pass did.
type Report struct {
	Linked   []string
	Removed  []string
	Warnings []string
}

// Install sets up all tool configuration for the project at root: settings
// bookkeeping, managed headers, and rule symlinks. It requires a docs/
// directory and is idempotent; re-running repairs whatever is missing.
func Install(root string, opts Options) (*Report, error) {
	if !project.HasDocs(root) {
		return nil, fmt.Errorf("no %s/ directory in %s; run this inside a project scaffolded with speculate docs", project.DocsDir, root)
	}

	report := &Report{}

	warnings, err := settings.Update(root, opts.Version)
	if err != nil {
		return nil, err
	}
	report.Warnings = append(report.Warnings, warnings...)

	for _, target := range project.TargetFiles(root) {
		if err := header.Ensure(target); err != nil {
			return nil, err
		}
	}

	res, err := rules.Setup(root, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	report.Linked = res.Linked
	report.Warnings = append(report.Warnings, res.Warnings...)

	return report, nil
}

// Uninstall removes everything Install created: managed headers (deleting a
// target file only when nothing else is in it), rule symlinks, and the
// settings file. The docs/ tree and the copier answers file are user data
// and are never touched. Safe to run when nothing is installed.
func Uninstall(root string) (*Report, error) {
	for _, target := range project.TargetFiles(root) {
		if err := header.Remove(target); err != nil {
			return nil, err
		}
	}

	res, err := rules.Teardown(root)
	if err != nil {
		return nil, err
	}

	if err := settings.Remove(root); err != nil {
		return nil, err
	}

	return &Report{Removed: res.Removed, Warnings: res.Warnings}, nil
}

package rules

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/speculate-labs/speculate/internal/project"
)

// Extension given to rule symlinks so Cursor picks them up.
const linkExt = ".mdc"

// Result summarizes a setup or teardown pass for the CLI to print.
type Result struct {
	Linked   []string
	Removed  []string
	Warnings []string
}

// Setup (re)creates the rule symlinks under .cursor/rules/. Every Markdown
// file in the source directory that passes the include/exclude filters gets
// a relative symlink named <base>.mdc. Links from a previous pass are
// cleared first so filter changes never leave stale links behind. A missing
// source directory is a warning, not an error: rules are optional.
func Setup(root string, include, exclude []string) (*Result, error) {
	res := &Result{}

	srcDir := project.RulesSourceDir(root)
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("rules directory %s not found, skipping rule links", srcDir))
		return res, nil
	}

	destDir := project.RulesDestDir(root)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("creating rules directory %s: %w", destDir, err)
	}

	removed, err := removeLinks(destDir)
	if err != nil {
		return nil, err
	}
	res.Removed = removed

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("reading rules directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}

		ok, err := matches(name, include, exclude)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		linkName := strings.TrimSuffix(name, filepath.Ext(name)) + linkExt
		linkPath := filepath.Join(destDir, linkName)

		// Relative targets keep the project portable across checkouts.
		target, err := filepath.Rel(destDir, filepath.Join(srcDir, name))
		if err != nil {
			return nil, fmt.Errorf("resolving relative target for %s: %w", name, err)
		}

		if err := os.Symlink(target, linkPath); err != nil {
			return nil, fmt.Errorf("linking %s: %w", name, err)
		}
		res.Linked = append(res.Linked, linkName)
	}

	return res, nil
}

// Teardown removes the symlinks in .cursor/rules/. Entries that are not
// symlinks are user-authored and left untouched; the symlink bit is the only
// signal that an entry is managed by this tool. A missing directory is a
// no-op.
func Teardown(root string) (*Result, error) {
	destDir := project.RulesDestDir(root)
	if _, err := os.Stat(destDir); err != nil {
		return &Result{}, nil
	}

	removed, err := removeLinks(destDir)
	if err != nil {
		return nil, err
	}
	return &Result{Removed: removed}, nil
}

// removeLinks deletes every symlink entry in dir and returns their names.
func removeLinks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var removed []string
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}

// matches applies the include/exclude glob filters to a rule file's base
// name. An empty include list admits everything.
func matches(name string, include, exclude []string) (bool, error) {
	included := len(include) == 0
	for _, pattern := range include {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if ok {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}

	for _, pattern := range exclude {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

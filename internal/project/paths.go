package project

import (
	"os"
	"path/filepath"

	"github.com/speculate-labs/speculate/internal/branding"
)

// File and directory name constants for the scaffold convention.
const (
	SettingsFile    = "settings.yml"
	AnswersFile     = "copier-answers.yml"
	DocsDir         = "docs"
	DevelopmentFile = "development.md"
)

// Fixed locations relative to the project root.
var (
	rulesSourceRel = filepath.Join("docs", "general", "agent-rules")
	rulesDestRel   = filepath.Join(".cursor", "rules")

	// Files that receive the managed header block.
	targetFiles = []string{"CLAUDE.md", "AGENTS.md"}
)

// StateDir returns the tool-managed state directory (<root>/.speculate).
func StateDir(root string) string {
	return filepath.Join(root, branding.ProjectDir())
}

// SettingsPath returns the path to the settings file.
func SettingsPath(root string) string {
	return filepath.Join(StateDir(root), SettingsFile)
}

// AnswersPath returns the path to the copier answers file. The file is
// owned by the scaffolding tool and is read-only to this CLI.
func AnswersPath(root string) string {
	return filepath.Join(StateDir(root), AnswersFile)
}

// DocsPath returns the path to the docs directory.
func DocsPath(root string) string {
	return filepath.Join(root, DocsDir)
}

// DevelopmentPath returns the path to docs/development.md.
func DevelopmentPath(root string) string {
	return filepath.Join(root, DocsDir, DevelopmentFile)
}

// RulesSourceDir returns the directory of agent rule files.
func RulesSourceDir(root string) string {
	return filepath.Join(root, rulesSourceRel)
}

// RulesDestDir returns the directory where rule symlinks are created.
func RulesDestDir(root string) string {
	return filepath.Join(root, rulesDestRel)
}

// TargetFiles returns the paths of the files that carry the managed header.
func TargetFiles(root string) []string {
	paths := make([]string, 0, len(targetFiles))
	for _, name := range targetFiles {
		paths = append(paths, filepath.Join(root, name))
	}
	return paths
}

// HasDocs reports whether the project has a docs directory.
func HasDocs(root string) bool {
	info, err := os.Stat(DocsPath(root))
	return err == nil && info.IsDir()
}

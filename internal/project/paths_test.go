package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	root := "/some/project"

	if got, want := SettingsPath(root), filepath.Join(root, ".speculate", "settings.yml"); got != want {
		t.Errorf("SettingsPath = %s, want %s", got, want)
	}
	if got, want := AnswersPath(root), filepath.Join(root, ".speculate", "copier-answers.yml"); got != want {
		t.Errorf("AnswersPath = %s, want %s", got, want)
	}
	if got, want := RulesSourceDir(root), filepath.Join(root, "docs", "general", "agent-rules"); got != want {
		t.Errorf("RulesSourceDir = %s, want %s", got, want)
	}
	if got, want := RulesDestDir(root), filepath.Join(root, ".cursor", "rules"); got != want {
		t.Errorf("RulesDestDir = %s, want %s", got, want)
	}
	if got, want := DevelopmentPath(root), filepath.Join(root, "docs", "development.md"); got != want {
		t.Errorf("DevelopmentPath = %s, want %s", got, want)
	}
}

func TestTargetFiles(t *testing.T) {
	targets := TargetFiles("/p")
	if len(targets) != 2 {
		t.Fatalf("expected 2 target files, got %v", targets)
	}
	if targets[0] != filepath.Join("/p", "CLAUDE.md") || targets[1] != filepath.Join("/p", "AGENTS.md") {
		t.Errorf("unexpected targets: %v", targets)
	}
}

func TestHasDocs(t *testing.T) {
	root := t.TempDir()

	if HasDocs(root) {
		t.Error("HasDocs should be false without docs/")
	}
	if err := os.Mkdir(DocsPath(root), 0755); err != nil {
		t.Fatal(err)
	}
	if !HasDocs(root) {
		t.Error("HasDocs should be true with docs/")
	}
}

func TestStatusChecks(t *testing.T) {
	root := t.TempDir()

	checks := StatusChecks(root)
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}
	for _, c := range checks {
		if c.OK {
			t.Errorf("%s should be missing in an empty project", c.Name)
		}
	}

	if err := os.MkdirAll(DocsPath(root), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DevelopmentPath(root), []byte("# Development"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(StateDir(root), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(AnswersPath(root), []byte("_commit: abc123\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, c := range StatusChecks(root) {
		if !c.OK {
			t.Errorf("%s should pass once present (%s)", c.Name, c.Path)
		}
	}
}

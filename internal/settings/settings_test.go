package settings

import (
	"os"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/speculate-labs/speculate/internal/project"
)

func readSettings(t *testing.T, root string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(project.SettingsPath(root))
	if err != nil {
		t.Fatalf("reading settings file: %v", err)
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		t.Fatalf("parsing settings file: %v", err)
	}
	return values
}

func TestUpdateCreatesSettingsFile(t *testing.T) {
	root := t.TempDir()

	if _, err := Update(root, "1.0.0"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	values := readSettings(t, root)
	if _, ok := values[KeyLastUpdate]; !ok {
		t.Error("last_update not written")
	}
	if got := values[KeyCLIVersion]; got != "1.0.0" {
		t.Errorf("last_cli_version = %v, want 1.0.0", got)
	}
}

func TestUpdatePreservesExistingKeys(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(project.StateDir(root), 0755); err != nil {
		t.Fatal(err)
	}
	existing := "custom_key: custom_value\nnested:\n  a: 1\n"
	if err := os.WriteFile(project.SettingsPath(root), []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Update(root, "1.0.0"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	values := readSettings(t, root)
	if got := values["custom_key"]; got != "custom_value" {
		t.Errorf("custom_key = %v, want custom_value", got)
	}
	if _, ok := values["nested"]; !ok {
		t.Error("nested key was dropped by the merge")
	}
	if _, ok := values[KeyLastUpdate]; !ok {
		t.Error("last_update not added")
	}
}

func TestUpdateReadsDocsVersionFromAnswers(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(project.StateDir(root), 0755); err != nil {
		t.Fatal(err)
	}
	answers := "_commit: v1.2.3\n_src_path: gh:test/repo\n"
	if err := os.WriteFile(project.AnswersPath(root), []byte(answers), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Update(root, "1.0.0"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	values := readSettings(t, root)
	if got := values[KeyDocsVersion]; got != "v1.2.3" {
		t.Errorf("last_docs_version = %v, want v1.2.3", got)
	}
}

func TestUpdateWarnsOnDowngrade(t *testing.T) {
	root := t.TempDir()

	if _, err := Update(root, "2.0.0"); err != nil {
		t.Fatalf("first Update failed: %v", err)
	}

	warnings, err := Update(root, "1.5.0")
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 downgrade warning, got %d: %v", len(warnings), warnings)
	}
}

func TestUpdateNoWarningForDevBuilds(t *testing.T) {
	root := t.TempDir()

	if _, err := Update(root, "2.0.0"); err != nil {
		t.Fatalf("first Update failed: %v", err)
	}

	warnings, err := Update(root, "dev")
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unparseable versions should not warn, got %v", warnings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	root := t.TempDir()

	values, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected empty map, got %v", values)
	}
}

func TestRemove(t *testing.T) {
	root := t.TempDir()

	if _, err := Update(root, "1.0.0"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := Remove(root); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(project.SettingsPath(root)); !os.IsNotExist(err) {
		t.Error("settings file should be gone")
	}

	// Removing again is a no-op.
	if err := Remove(root); err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
}

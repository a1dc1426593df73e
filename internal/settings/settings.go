package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/speculate-labs/speculate/internal/project"
)

// Bookkeeping keys written on every install.
const (
	KeyLastUpdate  = "last_update"
	KeyCLIVersion  = "last_cli_version"
	KeyDocsVersion = "last_docs_version"
)

// answers mirrors the copier answers file written by the scaffolding tool.
// Only the keys this CLI reads are declared; the file is never written.
type answers struct {
	Commit  string `yaml:"_commit"`
	SrcPath string `yaml:"_src_path"`
}

// Load reads the settings file into a generic map. A missing file yields an
// empty map so callers can merge into it unconditionally.
func Load(root string) (map[string]any, error) {
	data, err := os.ReadFile(project.SettingsPath(root))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

// Update merges the bookkeeping keys into the settings file, creating it
// (and the state directory) if needed. Keys not managed by this CLI are
// preserved as-is. When the previously recorded CLI version is newer than
// cliVersion, a non-fatal downgrade warning is returned.
func Update(root, cliVersion string) ([]string, error) {
	values, err := Load(root)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if prev, ok := values[KeyCLIVersion].(string); ok {
		if w := downgradeWarning(prev, cliVersion); w != "" {
			warnings = append(warnings, w)
		}
	}

	values[KeyLastUpdate] = time.Now().UTC().Format(time.RFC3339)
	values[KeyCLIVersion] = cliVersion

	if a, err := readAnswers(project.AnswersPath(root)); err == nil && a.Commit != "" {
		values[KeyDocsVersion] = a.Commit
	}

	if err := os.MkdirAll(project.StateDir(root), 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(project.SettingsPath(root), data, 0644); err != nil {
		return nil, fmt.Errorf("writing settings: %w", err)
	}
	return warnings, nil
}

// Remove deletes the settings file. A missing file is a no-op. The answers
// file in the same directory belongs to the scaffolding tool and is left
// untouched.
func Remove(root string) error {
	err := os.Remove(project.SettingsPath(root))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing settings: %w", err)
	}
	return nil
}

// readAnswers parses the copier answers file.
func readAnswers(path string) (*answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return &a, nil
}

// downgradeWarning returns a warning when prev is a newer semver than
// current. Unparseable versions (e.g., "dev" builds) produce no warning.
func downgradeWarning(prev, current string) string {
	pv, err := semver.NewVersion(strings.TrimPrefix(prev, "v"))
	if err != nil {
		return ""
	}
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return ""
	}
	if pv.GreaterThan(cv) {
		return fmt.Sprintf("project was last updated with CLI %s, which is newer than %s; consider upgrading", prev, current)
	}
	return ""
}

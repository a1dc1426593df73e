package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speculate-labs/speculate/internal/project"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that required scaffold files are present",
	Long: `Check that docs/development.md and .speculate/copier-answers.yml exist.
Read-only; exits non-zero when a required file is missing.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	missing := 0
	for _, check := range project.StatusChecks(root) {
		if check.OK {
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s missing (%s)\n", check.Name, check.Path)
		missing++
	}
	if missing > 0 {
		return fmt.Errorf("%d required files missing", missing)
	}
	return nil
}

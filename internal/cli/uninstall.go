package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speculate-labs/speculate/internal/installer"
)

var uninstallForce bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove speculate-managed tool configuration",
	Long: `Remove the managed header from CLAUDE.md and AGENTS.md (deleting a file
only if nothing else is in it), remove rule symlinks from .cursor/rules/, and
delete .speculate/settings.yml. The docs/ directory and the copier answers
file are never touched.`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVarP(&uninstallForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	// Removal is the destructive direction, so the prompt defaults to no.
	if !uninstallForce {
		fmt.Fprint(cmd.OutOrStdout(), "? Remove speculate-managed configuration from this project? (y/N) ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Uninstall cancelled.")
				return nil
			}
		}
	}

	report, err := installer.Uninstall(root)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ managed headers removed")
	if len(report.Removed) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ removed %d rule symlinks\n", len(report.Removed))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ settings removed")
	for _, w := range report.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s\n", w)
	}

	return nil
}

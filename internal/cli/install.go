package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speculate-labs/speculate/internal/config"
	"github.com/speculate-labs/speculate/internal/installer"
)

var (
	installInclude []string
	installExclude []string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Set up AI tool configuration for this project",
	Long: `Set up tool configuration in the current project: record bookkeeping in
.speculate/settings.yml, ensure the managed header in CLAUDE.md and AGENTS.md,
and link agent rules into .cursor/rules/. Safe to re-run at any time.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringSliceVar(&installInclude, "include", nil, "Glob patterns of rule files to link (default: all)")
	installCmd.Flags().StringSliceVar(&installExclude, "exclude", nil, "Glob patterns of rule files to skip")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	// Flags win over user config defaults.
	include := installInclude
	if len(include) == 0 {
		include = config.GetSlice("rules.include")
	}
	exclude := installExclude
	if len(exclude) == 0 {
		exclude = config.GetSlice("rules.exclude")
	}

	report, err := installer.Install(root, installer.Options{
		Version: buildVersion,
		Include: include,
		Exclude: exclude,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ settings updated (.speculate/settings.yml)")
	fmt.Fprintln(cmd.OutOrStdout(), "✓ managed header ensured (CLAUDE.md, AGENTS.md)")
	if len(report.Linked) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ linked %d rule files into .cursor/rules/\n", len(report.Linked))
		for _, name := range report.Linked {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", name)
		}
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s\n", w)
	}

	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/speculate-labs/speculate/internal/branding"
	"github.com/speculate-labs/speculate/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages the editor and agent configuration of projects scaffolded
with speculate docs: settings bookkeeping, managed headers in CLAUDE.md and
AGENTS.md, and rule symlinks under .cursor/rules/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

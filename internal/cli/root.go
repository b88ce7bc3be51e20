// Package cli wires the cobra command tree for trajlens.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "trajlens",
	Short: "Analyze SWE-agent trajectories",
	Long: `trajlens classifies and counts behaviors in SWE-agent trajectory files:
where the agent wrote reproduction code, where it searched the codebase,
and how often each tool or shell command was used.

Trajectories are resolved by instance ID (e.g. 'claude-4@django__django-12345')
under a root directory taken from --root, $` + config.EnvRoot + `, or ./trajectories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "r", "", "trajectory root directory (overrides $"+config.EnvRoot+")")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for result logs (overrides $"+config.EnvLogDir+")")

	rootCmd.AddCommand(reproCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers persistent flags over env/file/default settings.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if root, _ := cmd.Flags().GetString("root"); root != "" {
		cfg.Root = root
	}
	if logDir, _ := cmd.Flags().GetString("log-dir"); logDir != "" {
		cfg.LogDir = logDir
	}
	return cfg, nil
}

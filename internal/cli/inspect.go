package cli

import (
	"github.com/spf13/cobra"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/classify"
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <instance-id>",
	Short: "Browse a trajectory step by step",
	Long: `Open an interactive view of a trajectory. Each step is listed with
its index, tool name and classification badges; the detail pane shows the
step's raw record with syntax highlighting.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	steps, path, err := trajectory.Load(cfg.Root, args[0])
	if err != nil {
		return err
	}

	indexed := trajectory.Indexed(steps)
	outcomes := classify.RunAll(indexed)

	return tui.Run(args[0], path, indexed, outcomes)
}

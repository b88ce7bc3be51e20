package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/classify"
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/resultlog"
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

var reproCmd = &cobra.Command{
	Use:     "repro [instance-id]",
	Aliases: []string{"locate_reproduction_code"},
	Short:   "Find steps where the agent writes reproduction code",
	Long: `Find trajectory steps where the agent creates a reproduction test or
debug script. Results are appended to locate_reproduction_code.log.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocate("reproduction"),
}

var searchCmd = &cobra.Command{
	Use:     "search [instance-id]",
	Aliases: []string{"locate_search"},
	Short:   "Find steps where the agent searches or navigates the repo",
	Long: `Find trajectory steps where the agent searches or navigates the
codebase, via dedicated search tools, shell commands, or a view that
immediately follows a search. Results go to locate_search.log.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocate("search"),
}

var toolsCmd = &cobra.Command{
	Use:     "tools [instance-id]",
	Aliases: []string{"locate_tool_use"},
	Short:   "Count tool and shell-command usage across the trajectory",
	Long: `Count how often each tool and shell command appears in the
trajectory. Shell invocations count under composite keys like 'shell:grep'.
Results go to locate_tool_use.log.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocate("tool_use"),
}

func init() {
	for _, c := range []*cobra.Command{reproCmd, searchCmd, toolsCmd} {
		c.Flags().String("ids-file", "", "path to a file with one instance ID per line")
		c.Flags().Bool("print-only", false, "print results without appending to the result log")
		c.Flags().StringP("format", "f", "text", "output format: text, json")
	}
}

func runLocate(name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		ids, err := collectIDs(cmd, args)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("provide an instance ID or --ids-file")
		}

		printOnly, _ := cmd.Flags().GetBool("print-only")
		format, _ := cmd.Flags().GetString("format")

		var logw *resultlog.Writer
		if !printOnly {
			logw = resultlog.New(cfg.LogDir)
			defer logw.Close()
		}

		classifier := classify.Names[name]

		for _, id := range ids {
			steps, path, err := trajectory.Load(cfg.Root, id)
			if err != nil {
				var nf *trajectory.NotFoundError
				if !errors.As(err, &nf) {
					return err
				}
				// Keep the failed lookup traceable, then move on
				// to the rest of the batch.
				if logw != nil {
					if logErr := logw.AppendError(name, id, err); logErr != nil {
						fmt.Fprintf(os.Stderr, "Warning: %v\n", logErr)
					}
				}
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}

			outcome := classifier(trajectory.Indexed(steps))

			if logw != nil {
				if err := logw.Append(name, id, logPayload(outcome)); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}

			if err := printOutcome(cmd, format, id, path, outcome); err != nil {
				return err
			}
		}

		return nil
	}
}

func collectIDs(cmd *cobra.Command, args []string) ([]string, error) {
	var ids []string
	if len(args) == 1 && args[0] != "" {
		ids = append(ids, args[0])
	}

	idsFile, _ := cmd.Flags().GetString("ids-file")
	if idsFile == "" {
		return ids, nil
	}

	f, err := os.Open(idsFile)
	if err != nil {
		return nil, fmt.Errorf("opening ids file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			ids = append(ids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ids file: %w", err)
	}
	return ids, nil
}

// logPayload mirrors what gets printed: the hit list for step classifiers,
// the frequency map for tool usage. Empty results log as [] / {} rather
// than null.
func logPayload(o classify.Outcome) any {
	if o.Counts != nil {
		return o.Counts
	}
	if o.Steps == nil {
		return []int{}
	}
	return o.Steps
}

func printOutcome(cmd *cobra.Command, format, id, path string, o classify.Outcome) error {
	if format == "json" {
		record := map[string]any{"id": id}
		if o.Counts != nil {
			record["counts"] = o.Counts
		} else {
			record["steps"] = logPayload(o)
		}
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Trajectory: %s\n", path)

	if o.Counts != nil {
		keys := make([]string, 0, len(o.Counts))
		for k := range o.Counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tool(s)\n", id, len(keys))
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %d\n", k, o.Counts[k])
		}
		return nil
	}

	if len(o.Steps) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no matching steps\n", id)
		return nil
	}
	parts := make([]string, len(o.Steps))
	for i, s := range o.Steps {
		parts[i] = fmt.Sprint(s)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: steps %s\n", id, strings.Join(parts, ", "))
	return nil
}

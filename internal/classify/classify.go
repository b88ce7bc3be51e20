// Package classify implements the heuristic passes that label trajectory
// steps: reproduction-code writes, search/navigation, and tool usage.
package classify

import (
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

// Outcome holds the result of one classification pass. Step-locating passes
// fill Steps; the tool-usage pass fills Counts.
type Outcome struct {
	Steps  []int          `json:"steps,omitempty"`
	Counts map[string]int `json:"counts,omitempty"`
}

// Classifier is one heuristic pass over an ordered step sequence.
type Classifier func(steps []trajectory.IndexedStep) Outcome

// Names maps classifier names (as used by the CLI and result logs) to their
// implementations.
var Names = map[string]Classifier{
	"reproduction": Reproduction,
	"search":       Search,
	"tool_use":     ToolUse,
}

// Order is the canonical listing order for running every pass.
var Order = []string{"reproduction", "search", "tool_use"}

// RunAll executes every classifier and returns outcomes keyed by name.
func RunAll(steps []trajectory.IndexedStep) map[string]Outcome {
	results := make(map[string]Outcome, len(Names))
	for name, c := range Names {
		results[name] = c(steps)
	}
	return results
}

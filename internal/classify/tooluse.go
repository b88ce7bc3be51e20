package classify

import (
	"strings"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

// ToolUse counts tool and shell-command invocations across the trajectory.
// Action names count under their lowercased literal key; shell commands
// count independently under "shell:<head>", so a single step may bump both.
func ToolUse(steps []trajectory.IndexedStep) Outcome {
	counts := make(map[string]int)

	bump := func(key string) {
		if key != "" {
			counts[key]++
		}
	}

	for _, is := range steps {
		action := strings.ToLower(strings.TrimSpace(is.Step.ActionName()))
		bump(action)

		if head := ShellHead(is.Step.Command()); head != "" {
			bump("shell:" + head)
		}
	}

	return Outcome{Counts: counts}
}

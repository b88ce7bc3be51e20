package classify

import (
	"regexp"
	"strings"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

// Editor actions that write or modify files.
var editorActions = map[string]bool{
	"create":      true,
	"insert":      true,
	"str_replace": true,
	"write_file":  true,
	"apply_patch": true,
	"edit":        true,
}

var (
	reproFilePattern = regexp.MustCompile(`(?i)(reproduce|repro|debug|test)`)

	// An intent verb followed by a repro/debug noun, or one of the stock
	// repro phrases.
	reproThoughtPattern = regexp.MustCompile(
		`(?i)(create|write|add|build).*(repro(duce)?|debug).*` +
			`|minimal.*repro|reproduction.*test|failing.*test|unit\s*test`)

	testFilePattern = regexp.MustCompile(`(?i)test.*\.py$`)
)

func looksLikeReproFile(name string) bool {
	return name != "" && reproFilePattern.MatchString(name)
}

func looksLikeReproThought(thought string) bool {
	return thought != "" && reproThoughtPattern.MatchString(thought)
}

// Reproduction finds the steps where the agent writes reproduction or test
// code. Each step is appended at most once, in processing order.
func Reproduction(steps []trajectory.IndexedStep) Outcome {
	var hits []int

	for _, is := range steps {
		action := strings.ToLower(is.Step.ActionName())
		thought := is.Step.Thought()
		fname := is.Step.Filename()

		isEditor := editorActions[action]

		if isEditor && (looksLikeReproFile(fname) || looksLikeReproThought(thought)) {
			hits = append(hits, is.Index)
			continue
		}

		// Looser rule: any editor action on a test-named python file.
		if isEditor && testFilePattern.MatchString(fname) {
			hits = append(hits, is.Index)
			continue
		}

		// Actions that merely mention "create" still count when the
		// thought describes building a repro.
		if strings.Contains(action, "create") && looksLikeReproThought(thought) {
			hits = append(hits, is.Index)
		}
	}

	return Outcome{Steps: hits}
}

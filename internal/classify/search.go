package classify

import (
	"strings"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

// Dedicated search tools exposed by agent harnesses.
var searchTools = map[string]bool{
	"find_file":     true,
	"search_file":   true,
	"search_dir":    true,
	"ripgrep":       true,
	"rg":            true,
	"grep":          true,
	"find_class":    true,
	"find_function": true,
}

// Shell commands that search or navigate a checkout. "git grep" is folded to
// the single logical head "git-grep" before lookup.
var shellSearchHeads = map[string]bool{
	"find":     true,
	"grep":     true,
	"rg":       true,
	"ag":       true,
	"fd":       true,
	"ls":       true,
	"cd":       true,
	"cat":      true,
	"tree":     true,
	"git-grep": true,
	"findstr":  true,
	"dir":      true,
}

// Free-text phrases that signal search intent when nothing structural fired.
var searchPhrases = []string{
	"search", "grep", "find in", "look for",
	"scan directory", "navigate to", "list files",
}

// ShellHead returns the first whitespace-delimited token of a command, with
// the two-token "git grep" shape folded into "git-grep". Empty for blank
// commands.
func ShellHead(cmd string) string {
	toks := strings.Fields(cmd)
	if len(toks) == 0 {
		return ""
	}
	if toks[0] == "git" && len(toks) >= 2 && toks[1] == "grep" {
		return "git-grep"
	}
	return toks[0]
}

func isShellSearch(cmd string) bool {
	return shellSearchHeads[ShellHead(cmd)]
}

func hasSearchPhrase(thought string) bool {
	if thought == "" {
		return false
	}
	lower := strings.ToLower(thought)
	for _, p := range searchPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Search finds the steps where the agent searches or navigates the codebase.
// One boolean is carried through the sequence: a "view" immediately after a
// search-like step counts as navigation.
func Search(steps []trajectory.IndexedStep) Outcome {
	var hits []int

	prevWasSearch := false
	for _, is := range steps {
		action := strings.ToLower(strings.TrimSpace(is.Step.ActionName()))
		cmd := is.Step.Command()

		isSearch := searchTools[action] ||
			isShellSearch(cmd) ||
			(action == "view" && prevWasSearch)

		if !isSearch && hasSearchPhrase(is.Step.Thought()) {
			isSearch = true
		}

		if isSearch {
			hits = append(hits, is.Index)
		}
		prevWasSearch = isSearch
	}

	return Outcome{Steps: hits}
}

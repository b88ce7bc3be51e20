package trajectory

import (
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// patchTargets extracts target file names from a unified diff carried in a
// step's arguments (apply_patch style actions store the patch body under
// "patch" or "diff"). Unparseable patches contribute no candidates.
func patchTargets(args map[string]any) []string {
	var names []string
	for _, field := range []string{"patch", "diff"} {
		body, ok := args[field].(string)
		if !ok || !strings.Contains(body, "+++") {
			continue
		}
		files, _, err := gitdiff.Parse(strings.NewReader(body))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.NewName != "" {
				names = append(names, f.NewName)
			} else if f.OldName != "" {
				names = append(names, f.OldName)
			}
		}
	}
	return names
}

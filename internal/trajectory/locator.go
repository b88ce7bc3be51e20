package trajectory

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Recognized trajectory file extensions, in match priority order.
var extensions = []string{".json", ".jsonl", ".ndjson", ".traj"}

// ProblemSlug derives the problem slug from an instance ID of the form
// "<agent-run-id>@<problem-slug>". IDs without a separator are their own slug.
func ProblemSlug(instanceID string) string {
	if i := strings.LastIndex(instanceID, "@"); i >= 0 {
		return instanceID[i+1:]
	}
	return instanceID
}

// Locate returns candidate trajectory file paths for an instance ID, ordered
// by match quality: exact-stem matches on the full ID, exact-stem matches on
// the problem slug, then a recursive scan for files whose name contains
// either. Deduplicated preserving first-seen order. Files are not opened.
func Locate(root, instanceID string) []string {
	var paths []string

	slug := ProblemSlug(instanceID)

	for _, stem := range []string{instanceID, slug} {
		for _, ext := range extensions {
			direct := filepath.Join(root, stem+ext)
			if info, err := os.Stat(direct); err == nil && !info.IsDir() {
				paths = append(paths, direct)
			}
		}
	}

	// Recursive scan is robust to naming conventions like
	// "<model>__<slug>.traj" or dated subdirectories. WalkDir visits
	// entries in lexical order, so the scan tier is deterministic.
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !hasTrajectoryExt(d.Name()) {
			return nil
		}
		if strings.Contains(d.Name(), instanceID) || strings.Contains(d.Name(), slug) {
			paths = append(paths, path)
		}
		return nil
	})

	return dedupe(paths)
}

func hasTrajectoryExt(name string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var uniq []string
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			uniq = append(uniq, p)
		}
	}
	return uniq
}

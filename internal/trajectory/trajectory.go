// Package trajectory handles locating, parsing and normalizing SWE-agent
// trajectory files into an ordered, indexed step sequence.
package trajectory

import "fmt"

// Step is one recorded action in a trajectory. Trajectory files come from
// many agent harnesses and share no schema, so a step is an open key/value
// mapping and every field is optional.
type Step map[string]any

// IndexedStep pairs a step with its stable index.
type IndexedStep struct {
	Index int
	Step  Step
}

// NotFoundError reports that no usable trajectory exists for an instance ID.
type NotFoundError struct {
	InstanceID string
	Root       string
	Candidates int // how many candidate files were tried
}

func (e *NotFoundError) Error() string {
	if e.Candidates == 0 {
		return fmt.Sprintf("no trajectory file found for ID %q in %q", e.InstanceID, e.Root)
	}
	return fmt.Sprintf("found %d candidate file(s) for %q but none contained steps", e.Candidates, e.InstanceID)
}

// Load resolves an instance ID under root and returns the steps of the first
// candidate file that parses to a non-empty sequence, along with the path it
// came from. Returns *NotFoundError when no candidate yields steps.
func Load(root, instanceID string) ([]Step, string, error) {
	cands := Locate(root, instanceID)
	if len(cands) == 0 {
		return nil, "", &NotFoundError{InstanceID: instanceID, Root: root}
	}

	for _, path := range cands {
		steps, err := ParseFile(path)
		if err != nil {
			continue
		}
		if len(steps) > 0 {
			return steps, path, nil
		}
	}

	return nil, "", &NotFoundError{InstanceID: instanceID, Root: root, Candidates: len(cands)}
}

package trajectory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ParseFile reads one trajectory file and returns its step sequence.
// The returned error covers file access only; content that cannot be
// interpreted yields an empty sequence instead of failing.
func ParseFile(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trajectory: %w", err)
	}
	return Parse(data), nil
}

// Parse normalizes raw trajectory content into a flat step sequence. It
// accepts a JSON array of steps, an object wrapping the array under
// "trajectory" or "steps", a single step object, or newline-delimited JSON.
// Empty or whitespace-only input is an empty sequence.
func Parse(data []byte) []Step {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}

	var value any
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		switch v := value.(type) {
		case []any:
			return stepList(v)
		case map[string]any:
			if list, ok := v["trajectory"].([]any); ok {
				return stepList(list)
			}
			if list, ok := v["steps"].([]any); ok {
				return stepList(list)
			}
			// A bare object is a single-step trajectory.
			return []Step{Step(v)}
		}
		return nil
	}

	// NDJSON fallback: one JSON object per line, bad lines skipped.
	var steps []Step
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil || obj == nil {
			// Lines holding null, or not valid JSON objects, are skipped.
			continue
		}
		steps = append(steps, Step(obj))
	}
	return steps
}

func stepList(items []any) []Step {
	var steps []Step
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			steps = append(steps, Step(m))
		}
	}
	return steps
}

package classify

import (
	"testing"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

func TestNamesCoverOrder(t *testing.T) {
	if len(Names) != len(Order) {
		t.Fatalf("Names has %d entries, Order has %d", len(Names), len(Order))
	}
	for _, name := range Order {
		if Names[name] == nil {
			t.Errorf("Order entry %q missing from Names", name)
		}
	}
}

func TestRunAll(t *testing.T) {
	steps := indexed(
		trajectory.Step{"action": "search_dir", "args": map[string]any{"pattern": "foo"}},
		trajectory.Step{"action": "view"},
		trajectory.Step{"action": "create", "path": "repro.py", "thought": "create a minimal repro"},
		trajectory.Step{"action": "bash", "args": map[string]any{"cmdline": "python repro.py"}},
	)

	results := RunAll(steps)

	if got := results["search"].Steps; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("search: expected [1 2], got %v", got)
	}
	if got := results["reproduction"].Steps; len(got) != 1 || got[0] != 3 {
		t.Errorf("reproduction: expected [3], got %v", got)
	}
	if counts := results["tool_use"].Counts; counts["bash"] != 1 || counts["shell:python"] != 1 {
		t.Errorf("tool_use: unexpected counts %v", counts)
	}
}

// Parsing shapes must not change classification: same steps wrapped four
// different ways yield the same outcomes.
func TestOutcomesInvariantAcrossFileShapes(t *testing.T) {
	body := `[{"action":"search_dir","args":{"pattern":"foo"}},{"action":"view"},{"action":"create","path":"repro.py"}]`
	inputs := map[string]string{
		"bare":       body,
		"trajectory": `{"trajectory":` + body + `}`,
		"steps":      `{"steps":` + body + `}`,
		"ndjson": `{"action":"search_dir","args":{"pattern":"foo"}}
{"action":"view"}
{"action":"create","path":"repro.py"}`,
	}

	var baseline map[string]Outcome
	for name, input := range inputs {
		steps := trajectory.Indexed(trajectory.Parse([]byte(input)))
		results := RunAll(steps)
		if baseline == nil {
			baseline = results
			continue
		}
		for _, cname := range Order {
			got, want := results[cname], baseline[cname]
			if len(got.Steps) != len(want.Steps) {
				t.Errorf("%s/%s: steps %v vs %v", name, cname, got.Steps, want.Steps)
				continue
			}
			for i := range got.Steps {
				if got.Steps[i] != want.Steps[i] {
					t.Errorf("%s/%s: steps %v vs %v", name, cname, got.Steps, want.Steps)
					break
				}
			}
			if len(got.Counts) != len(want.Counts) {
				t.Errorf("%s/%s: counts %v vs %v", name, cname, got.Counts, want.Counts)
				continue
			}
			for k, v := range want.Counts {
				if got.Counts[k] != v {
					t.Errorf("%s/%s: counts[%q] %d vs %d", name, cname, k, got.Counts[k], v)
				}
			}
		}
	}
}

package trajectory

import "strings"

// Field extractors. Trajectory schemas vary by harness, so each accessor
// probes an ordered list of candidate fields and returns the first
// structurally-valid match, or an empty result when nothing fits. None of
// these fail: a missing field just means the value is absent.

var actionNameFields = []string{"action", "tool", "command", "name", "tool_name", "type"}

// ActionName returns the normalized tool/action name of a step, or "".
// When a candidate field holds an object instead of a string, its
// name/tool/type sub-fields are probed.
func (s Step) ActionName() string {
	for _, field := range actionNameFields {
		switch v := s[field].(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			for _, sub := range []string{"name", "tool", "type"} {
				if name, ok := v[sub].(string); ok && name != "" {
					return name
				}
			}
		}
	}
	return ""
}

// ActionObject returns the step's action sub-object if one exists, else an
// empty map. Nested argument lookups are based here.
func (s Step) ActionObject() map[string]any {
	for _, field := range []string{"action", "tool", "command"} {
		if obj, ok := s[field].(map[string]any); ok {
			return obj
		}
	}
	return map[string]any{}
}

// Args returns the step's argument mapping. The action object is probed
// first; steps without one keep their arguments at the top level.
func (s Step) Args() map[string]any {
	base := map[string]any(s)
	if act := s.ActionObject(); len(act) > 0 {
		base = act
	}
	for _, field := range []string{"args", "arguments", "params", "parameters"} {
		if m, ok := base[field].(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

// Tokens that qualify a free-text message field as command-like.
var commandTokens = []string{"grep", "find", "rg", "ls", "cd", "cat", "tree", "findstr", "dir", "type"}

// Command extracts a shell/terminal command string from a step, trimmed of
// surrounding whitespace. Direct fields win over argument fields, which win
// over free-text message fields; the latter qualify only when they contain a
// recognized command token.
func (s Step) Command() string {
	act := s.ActionObject()

	for _, field := range []string{"cmd", "command", "shell", "bash", "run", "input"} {
		var v any
		if len(act) > 0 {
			v = act[field]
		} else {
			v = s[field]
		}
		if str, ok := v.(string); ok {
			return strings.TrimSpace(str)
		}
	}

	args := s.Args()
	for _, field := range []string{"cmdline", "commandline"} {
		if str, ok := args[field].(string); ok && str != "" {
			return strings.TrimSpace(str)
		}
	}
	for _, field := range []string{"commands", "cmds"} {
		if joined := joinCommandList(args[field]); joined != "" {
			return joined
		}
	}

	for _, field := range []string{"content", "message", "assistant_message"} {
		str, ok := s[field].(string)
		if !ok {
			continue
		}
		for _, tok := range commandTokens {
			if strings.Contains(str, tok) {
				return strings.TrimSpace(str)
			}
		}
	}

	return ""
}

func joinCommandList(v any) string {
	list, ok := v.([]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, item := range list {
		if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
			parts = append(parts, strings.TrimSpace(str))
		}
	}
	return strings.Join(parts, " && ")
}

// Filename pulls a file path out of a step's arguments or top-level fields.
// Candidates that look path-like (contain a separator or an extension) are
// preferred; otherwise the first candidate collected is returned as-is.
func (s Step) Filename() string {
	args := s.Args()

	var candidates []string
	for _, field := range []string{"filename", "path", "filepath", "file_path", "target", "dst", "dst_path"} {
		if v, ok := args[field].(string); ok {
			candidates = append(candidates, v)
		}
	}
	if file, ok := args["file"].(map[string]any); ok {
		for _, field := range []string{"name", "path"} {
			if v, ok := file[field].(string); ok {
				candidates = append(candidates, v)
			}
		}
	}
	for _, field := range []string{"filename", "path"} {
		if v, ok := s[field].(string); ok {
			candidates = append(candidates, v)
		}
	}
	// Patch-style editor actions carry the target name inside the diff body.
	candidates = append(candidates, patchTargets(args)...)

	for _, c := range candidates {
		if looksPathLike(c) {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}

func looksPathLike(s string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(s, "/") || strings.Contains(s, ".")
}

// Thought returns the agent's free-text reasoning for a step, or "".
func (s Step) Thought() string {
	for _, field := range []string{"thought", "thoughts", "reasoning", "rationale", "plan", "analysis"} {
		if v, ok := s[field].(string); ok && v != "" {
			return v
		}
	}
	for _, field := range []string{"assistant_thought", "assistant_comment", "assistant_message"} {
		if v, ok := s[field].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

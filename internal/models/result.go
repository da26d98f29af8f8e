package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FunctionInfo describes one function reported by the refactor endpoint
type FunctionInfo struct {
	Name             string   `json:"name"`
	Args             []string `json:"args"`
	ComplexityScore  *float64 `json:"complexity_score,omitempty"`
	ReadabilityScore *float64 `json:"readability_score,omitempty"`
}

// functionWire accepts both the documented shape and the raw service shape
// (original_name/new_name/arguments).
type functionWire struct {
	Name             string          `json:"name"`
	NewName          string          `json:"new_name"`
	OriginalName     string          `json:"original_name"`
	Args             json.RawMessage `json:"args"`
	Arguments        json.RawMessage `json:"arguments"`
	ComplexityScore  *float64        `json:"complexity_score"`
	ReadabilityScore *float64        `json:"readability_score"`
}

func (f *FunctionInfo) UnmarshalJSON(data []byte) error {
	var w functionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	f.Name = firstNonEmpty(w.Name, w.NewName, w.OriginalName)
	f.ComplexityScore = w.ComplexityScore
	f.ReadabilityScore = w.ReadabilityScore

	raw := w.Args
	if isEmptyRaw(raw) {
		raw = w.Arguments
	}
	args, err := parseArgs(raw)
	if err != nil {
		return fmt.Errorf("function %q: %w", f.Name, err)
	}
	f.Args = args
	return nil
}

// Signature renders the function as name(arg1, arg2)
func (f FunctionInfo) Signature() string {
	return f.Name + "(" + strings.Join(f.Args, ", ") + ")"
}

// RefactorResult is the decoded endpoint response. Exactly one of the
// metadata shapes is normally populated, depending on the endpoint revision.
type RefactorResult struct {
	ReformattedCode     string         `json:"reformated_code"`
	Functions           []FunctionInfo `json:"functions,omitempty"`
	RefactoredFunctions []FunctionInfo `json:"refactored_functions,omitempty"`
	ComplexityScore     *float64       `json:"complexity_score,omitempty"`
	ReadabilityScore    *float64       `json:"readability_score,omitempty"`
}

// FunctionList returns whichever function list the endpoint sent
func (r *RefactorResult) FunctionList() []FunctionInfo {
	if r == nil {
		return nil
	}
	if len(r.RefactoredFunctions) > 0 {
		return r.RefactoredFunctions
	}
	return r.Functions
}

// Clone returns a deep copy so snapshots never share slices with live state
func (r *RefactorResult) Clone() *RefactorResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Functions = cloneFunctions(r.Functions)
	out.RefactoredFunctions = cloneFunctions(r.RefactoredFunctions)
	out.ComplexityScore = cloneFloat(r.ComplexityScore)
	out.ReadabilityScore = cloneFloat(r.ReadabilityScore)
	return &out
}

func cloneFunctions(in []FunctionInfo) []FunctionInfo {
	if in == nil {
		return nil
	}
	out := make([]FunctionInfo, len(in))
	for i, f := range in {
		out[i] = FunctionInfo{
			Name:             f.Name,
			Args:             append([]string(nil), f.Args...),
			ComplexityScore:  cloneFloat(f.ComplexityScore),
			ReadabilityScore: cloneFloat(f.ReadabilityScore),
		}
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isEmptyRaw(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// parseArgs accepts either a JSON array of strings or a single string of
// comma separated arguments.
func parseArgs(raw json.RawMessage) ([]string, error) {
	if isEmptyRaw(raw) {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil, fmt.Errorf("args must be a string or a list of strings")
	}
	return SplitArguments(joined), nil
}

// SplitArguments splits "a: int, b: Dict[str, int] = {}" on the commas that
// are not nested inside brackets, braces, parentheses or quotes.
func SplitArguments(s string) []string {
	args := []string{}
	depth := 0
	var quote rune
	start := 0

	flush := func(end int) {
		if part := strings.TrimSpace(s[start:end]); part != "" {
			args = append(args, part)
		}
	}

	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			flush(i)
			start = i + 1
		}
	}
	flush(len(s))
	return args
}

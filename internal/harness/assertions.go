package harness

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It carries the captured output to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Captured output the assertion inspected
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Output != "" {
		fmt.Fprintf(&buf, "\nOutput:\n")
		for _, line := range strings.Split(strings.TrimRight(e.Output, "\n"), "\n") {
			fmt.Fprintf(&buf, "  | %s\n", line)
		}
	}

	return buf.String()
}

func assertContains(kind, output, text string) error {
	if strings.Contains(output, text) {
		return nil
	}
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("output containing %q", text),
		Actual:   "not found",
		Output:   output,
	}
}

func assertLineCount(output string, want int) error {
	got := countLines(output)
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertLineCount,
		Expected: fmt.Sprintf("%d lines", want),
		Actual:   fmt.Sprintf("%d lines", got),
		Output:   output,
	}
}

// countLines counts newline-terminated lines, plus a trailing partial line.
func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

func assertJSONField(output string, a Assertion) error {
	var doc any
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		return &AssertionError{
			Type:     AssertJSONField,
			Expected: "JSON output",
			Actual:   fmt.Sprintf("decode failed: %v", err),
			Output:   output,
		}
	}

	got, err := lookupPath(doc, a.Path)
	if err != nil {
		return &AssertionError{
			Type:     AssertJSONField,
			Expected: fmt.Sprintf("%s = %q", a.Path, a.Equals),
			Actual:   err.Error(),
			Output:   output,
		}
	}
	if got != a.Equals {
		return &AssertionError{
			Type:     AssertJSONField,
			Expected: fmt.Sprintf("%s = %q", a.Path, a.Equals),
			Actual:   fmt.Sprintf("%s = %q", a.Path, got),
			Output:   output,
		}
	}
	return nil
}

// lookupPath walks a dotted path through decoded JSON. Numeric segments
// index arrays. The leaf is returned in its text form.
func lookupPath(doc any, path string) (string, error) {
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return "", fmt.Errorf("field %q not found", seg)
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return "", fmt.Errorf("index %q out of range (len %d)", seg, len(node))
			}
			cur = node[i]
		default:
			return "", fmt.Errorf("cannot descend into %T at %q", cur, seg)
		}
	}

	switch leaf := cur.(type) {
	case string:
		return leaf, nil
	case nil:
		return "null", nil
	case map[string]any, []any:
		b, err := json.Marshal(leaf)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(leaf), nil
	}
}

// EvaluateAssertions runs all assertions against a result.
// Returns a list of failure messages (empty if all pass).
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertStdoutContains:
			err = assertContains(assertion.Type, result.Stdout, assertion.Text)
		case AssertStderrContains:
			err = assertContains(assertion.Type, result.Stderr, assertion.Text)
		case AssertLineCount:
			err = assertLineCount(result.Stdout, assertion.Count)
		case AssertJSONField:
			err = assertJSONField(result.Stdout, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

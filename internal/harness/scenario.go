package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is one command-line run loaded from YAML.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	// Description is a human-readable explanation.
	Description string `yaml:"description"`

	// Args are the command-line arguments, keywords and numbers.
	Args []string `yaml:"args"`

	// Format selects the output format ("text" or "json"). Empty means text.
	Format string `yaml:"format,omitempty"`

	// TraceID pins the trace id reported in JSON output.
	TraceID string `yaml:"trace_id,omitempty"`

	// Golden compares stdout against testdata/golden/{name}.golden.
	Golden bool `yaml:"golden,omitempty"`

	Expect Expect `yaml:"expect"`

	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Expect holds the expected process outcome.
type Expect struct {
	ExitCode int `yaml:"exit_code"`
}

// Assertion is a check over the captured output.
type Assertion struct {
	Type string `yaml:"type"`

	// Text is the substring for stdout_contains and stderr_contains.
	Text string `yaml:"text,omitempty"`

	// Count is the expected line count for line_count.
	Count int `yaml:"count,omitempty"`

	// Path and Equals drive json_field: a dotted path into the JSON
	// response (array elements by index) and the expected value.
	Path   string `yaml:"path,omitempty"`
	Equals string `yaml:"equals,omitempty"`
}

// Assertion type constants.
const (
	AssertStdoutContains = "stdout_contains"
	AssertStderrContains = "stderr_contains"
	AssertLineCount      = "line_count"
	AssertJSONField      = "json_field"
)

// LoadScenario reads and validates a scenario file.
// Unknown fields are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", s.Format)
	}

	if s.Expect.ExitCode < 0 {
		return fmt.Errorf("expect.exit_code must be non-negative")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertions[%d]: %w", i, err)
		}
	}

	return nil
}

func validateAssertion(a Assertion) error {
	switch a.Type {
	case AssertStdoutContains, AssertStderrContains:
		if a.Text == "" {
			return fmt.Errorf("%s requires 'text' field", a.Type)
		}
	case AssertLineCount:
		if a.Count < 0 {
			return fmt.Errorf("line_count requires non-negative 'count'")
		}
	case AssertJSONField:
		if a.Path == "" {
			return fmt.Errorf("json_field requires 'path' field")
		}
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

package harness

import (
	"bytes"
	"fmt"

	"github.com/roach88/seebinum/internal/cli"
	"github.com/roach88/seebinum/internal/testutil"
)

// Run executes a scenario through the real command and returns the result.
//
// Each run builds a fresh root command writing into in-memory buffers, so
// scenarios are isolated from each other and from the process streams. JSON
// scenarios get a fixed trace id.
//
// A returned error means the scenario could not be run at all. Failed
// expectations are reported in Result.Errors with Pass set to false.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommandWithOptions(&cli.RootOptions{
		TraceIDs: testutil.NewFixedTraceIDGenerator(scenario.TraceID),
	})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	args := make([]string, 0, len(scenario.Args)+2)
	if scenario.Format != "" {
		args = append(args, "--format", scenario.Format)
	}
	args = append(args, scenario.Args...)

	result := NewResult()
	result.ExitCode = cli.Execute(cmd, args)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if result.ExitCode != scenario.Expect.ExitCode {
		result.AddError(fmt.Sprintf("exit code: expected %d, got %d",
			scenario.Expect.ExitCode, result.ExitCode))
	}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

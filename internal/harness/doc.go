// Package harness runs seebinum command-line scenarios described in YAML
// and checks their output.
//
// A scenario names the arguments to pass, the exit code to expect, and a
// list of assertions over the captured output:
//
//	name: uint32_operations
//	description: Operations print operands and results
//	args: ["uint32", "mul", "3", "2", "add", "3", "2"]
//	golden: true
//	expect:
//	  exit_code: 0
//	assertions:
//	  - type: stdout_contains
//	    text: "Result from mul:"
//
// Assertion types:
//   - stdout_contains: stdout contains text
//   - stderr_contains: stderr contains text
//   - line_count: stdout has exactly count lines
//   - json_field: the JSON value at a dotted path in stdout equals a string
//
// Scenarios with golden set compare stdout byte for byte against
// testdata/golden/{name}.golden. JSON scenarios pin the trace id with
// trace_id so their output is deterministic.
package harness

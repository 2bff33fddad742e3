package testutil

// FixedTraceIDGenerator returns the same trace id every time.
//
// Scenario runs that produce JSON output use it so golden snapshots stay
// byte-identical across runs.
//
// Thread-safety: FixedTraceIDGenerator is stateless and safe for concurrent use.
type FixedTraceIDGenerator struct {
	id string
}

// NewFixedTraceIDGenerator creates a generator for id.
//
// The id is typically set in the scenario YAML:
//
//	trace_id: "trace-0001"
//
// If id is empty, Generate() returns "test-trace-default".
func NewFixedTraceIDGenerator(id string) *FixedTraceIDGenerator {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedTraceIDGenerator{id: id}
}

// Generate returns the fixed trace id.
//
// Implements cli.TraceIDGenerator.
func (g *FixedTraceIDGenerator) Generate() string {
	return g.id
}

package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)

	for _, s := range scenarios {
		if !s.Golden {
			continue
		}
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.Equal(t, s.Expect.ExitCode, result.ExitCode)
		})
	}
}

func TestAssertGolden_FromResult(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "int8_wrap_again",
		Description: "wraps",
		Args:        []string{"int8", "add", "-100", "-100"},
	})
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	AssertGolden(t, "int8_wrap", result)
}

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seebinum/internal/testutil"
)

// runCLI executes the command with captured streams and a fixed trace id.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := NewRootCommandWithOptions(&RootOptions{TraceIDs: testutil.NewFixedTraceIDGenerator("trace-test")})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	code = Execute(cmd, args)
	return out.String(), errOut.String(), code
}

func decodeResponse(t *testing.T, stdout string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	return resp
}

func TestRun_Operation(t *testing.T) {
	stdout, stderr, code := runCLI(t, "uint8", "add", "1", "2")

	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "Operands to add:\n"+
		"         uint8 1(0x01)\n"+
		"         uint8 2(0x02)\n"+
		"Result from add:\n"+
		"         uint8 3(0x03)\n"+
		"\n", stdout)
}

func TestRun_NegativeNumbers(t *testing.T) {
	stdout, _, code := runCLI(t, "int16", "mul", "-3", "-4")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "         int16 12(0x000C)\n")
}

func TestRun_NumberList(t *testing.T) {
	stdout, _, code := runCLI(t, "uint8", "1,2", "showbinary", "3")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "         uint8 1(00000001)\n"+
		"         uint8 2(00000010)\n"+
		"         uint8 3(00000011)\n", stdout)
}

func TestRun_FlagsSetInitialState(t *testing.T) {
	stdout, _, code := runCLI(t, "--type", "uint8", "--show", "binary", "5", "6")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "         uint8 5(00000101)\n"+
		"         uint8 6(00000110)\n", stdout)
}

func TestRun_Listing(t *testing.T) {
	stdout, _, code := runCLI(t, "int8", "-1")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "To binary:\n")
	assert.Contains(t, stdout, "   *      int8 -1 -> 0xFF\n")
	assert.Contains(t, stdout, "\nFrom binary:\n")
	assert.Contains(t, stdout, "         uint8 255 <- 0xFF\n")
}

func TestRun_NoArguments(t *testing.T) {
	stdout, stderr, code := runCLI(t)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stderr, "Error: no arguments")
}

func TestRun_NoArgumentsJSON(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json")

	assert.Equal(t, ExitFailure, code)
	resp := decodeResponse(t, stdout)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNoArguments, resp.Error.Code)
	assert.Equal(t, "trace-test", resp.TraceID)
}

func TestRun_UnknownParameter(t *testing.T) {
	stdout, stderr, code := runCLI(t, "uint8", "plus", "1")

	assert.Equal(t, ExitCommandError, code)
	assert.Equal(t, "Unknown parameter: \"plus\"\n", stdout)
	assert.Contains(t, stderr, "Usage:")
	assert.Contains(t, stderr, `Error: invalid arguments: unknown parameter "plus"`)
}

func TestRun_UnknownParameterJSON(t *testing.T) {
	stdout, stderr, code := runCLI(t, "--format", "json", "plus")

	assert.Equal(t, ExitCommandError, code)
	assert.NotContains(t, stderr, "Usage:")
	resp := decodeResponse(t, stdout)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownParameter, resp.Error.Code)
	assert.Equal(t, map[string]interface{}{"parameter": "plus"}, resp.Error.Details)
}

func TestRun_DivideByZero(t *testing.T) {
	stdout, stderr, code := runCLI(t, "uint8", "add", "1", "2", "div", "1", "0")

	assert.Equal(t, ExitFailure, code)
	// Steps before the failing one are still printed.
	assert.Contains(t, stdout, "Result from add:\n         uint8 3(0x03)\n")
	// The failing step shows its operands but no result.
	assert.True(t, strings.HasSuffix(stdout, "Operands to divide:\n         uint8 1(0x01)\n         uint8 0(0x00)\n"), stdout)
	assert.NotContains(t, stdout, "Result from divide")
	assert.Contains(t, stderr, "operation failed")
	assert.Contains(t, stderr, "DIVIDE_BY_ZERO")
}

func TestRun_DivideByZeroJSON(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json", "int32", "div", "7", "0")

	assert.Equal(t, ExitFailure, code)
	resp := decodeResponse(t, stdout)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DIVIDE_BY_ZERO", resp.Error.Code)
	assert.Equal(t, "step 0: DIVIDE_BY_ZERO: division by zero (op=divide, type=int32)", resp.Error.Message)

	var details struct {
		Operations []OperationReport `json:"operations"`
	}
	raw, err := json.Marshal(resp.Error.Details)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &details))
	require.Len(t, details.Operations, 1)
	assert.Equal(t, "divide", details.Operations[0].Operation)
	assert.Len(t, details.Operations[0].Operands, 2)
	assert.Nil(t, details.Operations[0].Result)
}

func TestRun_FloatDivideByZeroIsInf(t *testing.T) {
	stdout, _, code := runCLI(t, "float32", "div", "1", "0")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "float32 +Inf(0x7F800000)")
}

func TestRun_JSONListing(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json", "float16", "1")

	assert.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string `json:"status"`
		Data   Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Data.Listing)
	require.Len(t, resp.Data.Listing.ToBinary, 15)
	require.Len(t, resp.Data.Listing.FromBinary, 15)

	var preferred []ValueReport
	for _, v := range resp.Data.Listing.ToBinary {
		if v.Preferred {
			preferred = append(preferred, v)
		}
	}
	require.Len(t, preferred, 1)
	assert.Equal(t, ValueReport{Type: "float16", Value: "1", Raw: "0x3C00", Bytes: "00 3C", Preferred: true}, preferred[0])
}

func TestRun_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad type", []string{"--type", "int128", "1"}},
		{"bad show", []string{"--show", "octal", "1"}},
		{"bad float", []string{"--float", "sci", "1"}},
		{"bad format", []string{"--format", "xml", "1"}},
		{"unknown flag", []string{"--nope", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runCLI(t, tt.args...)
			assert.Equal(t, ExitCommandError, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, code := runCLI(t, "-v", "uint8", "add", "1", "2")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Result from add:")
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "arguments parsed")
}

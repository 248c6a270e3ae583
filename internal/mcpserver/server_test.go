package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/tokenizer"
)

func TestResolvePolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		want    tokenizer.Policy
		wantErr bool
	}{
		{"empty uses config default", "", tokenizer.PolicyStrict, false},
		{"strict", "strict", tokenizer.PolicyStrict, false},
		{"alphanumeric", "alphanumeric", tokenizer.PolicyAlphanumeric, false},
		{"unknown value", "lenient", "", true},
		{"case sensitive", "Strict", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePolicy(tt.policy)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid values")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckInputSize(t *testing.T) {
	origCfg := cfg
	cfg = &serverConfig{
		DefaultPolicy: tokenizer.PolicyStrict,
		MaxInput:      10,
	}
	t.Cleanup(func() { cfg = origCfg })

	assert.NoError(t, checkInputSize("under ten"))
	assert.NoError(t, checkInputSize("exactly 10"))
	assert.Error(t, checkInputSize("this is over ten bytes"))

	// Non-string values pass through; the formatter reports the type error.
	assert.NoError(t, checkInputSize(42))
	assert.NoError(t, checkInputSize(nil))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("something went sideways"))

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "something went sideways", text.Text)
}

func TestServerInstructions_NameEnvVars(t *testing.T) {
	// The instructions are the only place MCP clients learn about the
	// env var configuration surface, so keep them in sync with loadConfig.
	assert.Contains(t, serverInstructions, "CASETOOLS_POLICY")
	assert.Contains(t, serverInstructions, "CASETOOLS_MAX_INPUT")
}

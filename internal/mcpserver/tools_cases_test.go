package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/tokenizer"
)

func TestCasesTool(t *testing.T) {
	_, output, err := handleCases(context.Background(), &mcp.CallToolRequest{}, casesInput{})
	require.NoError(t, err)

	assert.Equal(t, "camel", output.DefaultCase)
	assert.Equal(t, "strict", output.DefaultPolicy)
	assert.Equal(t, []string{"strict", "alphanumeric"}, output.Policies)

	require.Len(t, output.Cases, 7)
	examples := make(map[string]string, len(output.Cases))
	for _, style := range output.Cases {
		examples[style.Name] = style.Example
	}

	assert.Equal(t, "helloWorldExample", examples["camel"])
	assert.Equal(t, "HelloWorldExample", examples["pascal"])
	assert.Equal(t, "hello_world_example", examples["snake"])
	assert.Equal(t, "HELLO_WORLD_EXAMPLE", examples["screaming-snake"])
	assert.Equal(t, "hello-world-example", examples["kebab"])
	assert.Equal(t, "hello.world.example", examples["dot"])
	assert.Equal(t, "Hello World Example", examples["title"])
}

func TestCasesTool_ReportsConfiguredPolicy(t *testing.T) {
	origCfg := cfg
	cfg = &serverConfig{
		DefaultPolicy: tokenizer.PolicyAlphanumeric,
		MaxInput:      65536,
	}
	t.Cleanup(func() { cfg = origCfg })

	_, output, err := handleCases(context.Background(), &mcp.CallToolRequest{}, casesInput{})
	require.NoError(t, err)
	assert.Equal(t, "alphanumeric", output.DefaultPolicy)
}

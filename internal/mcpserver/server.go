// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casetools MCP server — converts text between naming case styles and exposes the underlying word tokenizer.

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_POLICY (default: strict) — default tokenization policy (strict or alphanumeric)
- CASETOOLS_MAX_INPUT (default: 65536) — maximum accepted input size in bytes

Policies: strict validates input (rejects empty input and input starting with a digit), strips punctuation, and splits on whitespace and underscores. alphanumeric accepts any input and splits on runs of non-alphanumeric characters. Use the cases tool to discover the supported case styles.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to a target case style: camel, pascal, snake, screaming-snake, kebab, dot, or title. Defaults to camel when case is omitted. All styles except kebab tokenize the input into words first; kebab rewrites separators and camelCase boundaries in place and accepts any input. The default tokenization policy is configurable via the CASETOOLS_POLICY env var.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split text into word tokens using a tokenization policy (strict or alphanumeric). Useful for previewing how convert will segment input before choosing a case style.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cases",
		Description: "List the supported case styles with example renderings, the available tokenization policies, and the server defaults. Call this first to discover valid values for the convert tool.",
	}, handleCases)
}

// resolvePolicy maps the optional policy argument to a tokenizer policy,
// falling back to the configured server default when empty.
func resolvePolicy(policy string) (tokenizer.Policy, error) {
	if policy == "" {
		return cfg.DefaultPolicy, nil
	}
	if !tokenizer.IsValidPolicy(policy) {
		return "", fmt.Errorf("invalid policy %q; valid values: %s", policy, strings.Join(tokenizer.ValidPolicies(), ", "))
	}
	return tokenizer.Policy(policy), nil
}

// checkInputSize rejects string inputs larger than the configured maximum.
// Non-string values pass through so the formatter can report the type error.
func checkInputSize(v any) error {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if len(s) > cfg.MaxInput {
		return fmt.Errorf("input size %d exceeds maximum of %d bytes", len(s), cfg.MaxInput)
	}
	return nil
}

// errResult creates an MCP error result from an error. Tool errors never
// carry filesystem paths, so the message is passed through unmodified.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type tokenizeInput struct {
	Text   any    `json:"text"             jsonschema:"The text to tokenize. Must be a string."`
	Policy string `json:"policy,omitempty" jsonschema:"Tokenization policy (strict or alphanumeric). Defaults to the server policy."`
}

type tokenizeOutput struct {
	Policy     string   `json:"policy"`
	TokenCount int      `json:"token_count"`
	Tokens     []string `json:"tokens"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	policy, err := resolvePolicy(input.Policy)
	if err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	if err := checkInputSize(input.Text); err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	tok := &tokenizer.Tokenizer{Policy: policy}
	tokens, err := tok.TokenizeValue(input.Text)
	if err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	return nil, tokenizeOutput{
		Policy:     string(policy),
		TokenCount: len(tokens),
		Tokens:     tokens,
	}, nil
}

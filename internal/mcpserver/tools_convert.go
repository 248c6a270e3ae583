package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/casetools/formatter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text   any    `json:"text"             jsonschema:"The text to convert. Must be a string."`
	Case   string `json:"case,omitempty"   jsonschema:"Target case style (camel\\, pascal\\, snake\\, screaming-snake\\, kebab\\, dot\\, or title). Defaults to camel."`
	Policy string `json:"policy,omitempty" jsonschema:"Tokenization policy (strict or alphanumeric). Defaults to the server policy."`
}

type convertOutput struct {
	Input  string `json:"input"`
	Case   string `json:"case"`
	Policy string `json:"policy"`
	Output string `json:"output"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	target := formatter.Case(input.Case)
	if input.Case == "" {
		target = formatter.CaseCamel
	}
	if !formatter.IsValidCase(string(target)) {
		return errResult(fmt.Errorf("invalid case %q; valid values: %s", input.Case, strings.Join(formatter.ValidCases(), ", "))), convertOutput{}, nil
	}

	policy, err := resolvePolicy(input.Policy)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if err := checkInputSize(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	f := &formatter.Formatter{Policy: policy}
	out, err := f.FormatValue(input.Text, target)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	// FormatValue only succeeds for string inputs.
	text, _ := input.Text.(string)
	return nil, convertOutput{
		Input:  text,
		Case:   string(target),
		Policy: string(policy),
		Output: out,
	}, nil
}

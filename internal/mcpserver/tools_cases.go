package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// caseSample is rendered in every style so clients can see each one applied
// to the same input.
const caseSample = "hello world example"

type casesInput struct{}

type caseStyle struct {
	Name    string `json:"name"`
	Example string `json:"example"`
}

type casesOutput struct {
	Cases         []caseStyle `json:"cases"`
	Policies      []string    `json:"policies"`
	DefaultCase   string      `json:"default_case"`
	DefaultPolicy string      `json:"default_policy"`
}

func handleCases(_ context.Context, _ *mcp.CallToolRequest, _ casesInput) (*mcp.CallToolResult, casesOutput, error) {
	f := formatter.New()
	names := formatter.ValidCases()
	styles := make([]caseStyle, 0, len(names))
	for _, name := range names {
		example, err := f.Format(caseSample, formatter.Case(name))
		if err != nil {
			return errResult(err), casesOutput{}, nil
		}
		styles = append(styles, caseStyle{Name: name, Example: example})
	}

	return nil, casesOutput{
		Cases:         styles,
		Policies:      tokenizer.ValidPolicies(),
		DefaultCase:   string(formatter.CaseCamel),
		DefaultPolicy: string(cfg.DefaultPolicy),
	}, nil
}

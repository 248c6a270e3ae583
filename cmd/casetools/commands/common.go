// Package commands provides CLI command handlers for casetools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/tokenizer"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special argument used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateCase validates a case style name and returns an error if invalid.
func ValidateCase(value string) error {
	if value != "" && !formatter.IsValidCase(value) {
		return fmt.Errorf("invalid case '%s'. Valid cases: %v", value, formatter.ValidCases())
	}
	return nil
}

// ValidatePolicy validates a tokenization policy name and returns an error if invalid.
func ValidatePolicy(value string) error {
	if value != "" && !tokenizer.IsValidPolicy(value) {
		return fmt.Errorf("invalid policy '%s'. Valid policies: %v", value, tokenizer.ValidPolicies())
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ReadText returns a command's input text: the literal argument, or all of
// stdin when the argument is StdinFilePath.
func ReadText(arg string) (string, error) {
	if arg != StdinFilePath {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

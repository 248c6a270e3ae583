// Package casetools provides tools for converting strings between case
// formats.
//
// casetools splits input into words with a shared tokenizer and renders
// the words in camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE,
// kebab-case, dot.case, and Title Case.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - tokenizer: Split input strings into words under a configurable policy
//   - formatter: Render words in named case formats
//   - generator: Generate Go constant files from name lists
//   - caseerrors: Shared error types and sentinel categories
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string:
//
//	import "github.com/erraggy/casetools/formatter"
//
//	out, err := formatter.CamelCase("Hello World")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // helloWorld
//
// Tokenize a string:
//
//	import "github.com/erraggy/casetools/tokenizer"
//
//	words, err := tokenizer.Tokenize("  hello  WORLD  ")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(words) // [hello WORLD]
//
// Generate a constant file:
//
//	import "github.com/erraggy/casetools/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithNames([]string{"pending review", "done"}),
//		generator.WithPackageName("status"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.File.WriteFile("status/names_gen.go")
//
// # Tokenizer Package
//
// The tokenizer package splits input into words. Two policies are
// available:
//
//   - strict (default): trims the input, rejects empty and
//     whitespace-only input, rejects input whose first character is an
//     ASCII digit, strips characters that are neither word characters
//     (ASCII letters, digits, underscore) nor whitespace, and splits on
//     whitespace and underscore runs
//   - alphanumeric: splits the trimmed input on runs of characters that
//     are not ASCII letters or digits, with no leading-digit check
//
// Both policies preserve word order and case, and never return empty
// tokens. See the tokenizer package documentation for the full error
// contract.
//
// # Formatter Package
//
// The formatter package renders tokenized words in named case formats.
// All formats except kebab-case share the tokenizer front end;
// kebab-case runs an ordered substitution pipeline over the whole
// string, which lets it hyphenate camelCase boundaries ("HelloWorld"
// becomes "hello-world") but means it performs no leading-digit or
// word-character validation.
//
// Example:
//
//	f := formatter.New()
//	f.Policy = tokenizer.PolicyAlphanumeric
//
//	out, err := f.Format("v1.2.3 release", formatter.CaseSnake)
//	// out == "v1_2_3_release"
//
// # Generator Package
//
// The generator package turns lists of raw names into Go constant
// files: the identifier is the PascalCase rendering of each name, the
// value is the name rendered in a configurable target case. Name lists
// load from YAML documents or plain slices, and generated output is
// goimports-formatted.
//
// # Error Handling
//
// All packages report failures through the caseerrors package. Errors
// carry a category sentinel matchable with errors.Is and a concrete
// type extractable with errors.As:
//
//	_, err := formatter.CamelCase("123abc")
//	if errors.Is(err, caseerrors.ErrLeadingDigit) {
//		var digitErr *caseerrors.LeadingDigitError
//		errors.As(err, &digitErr)
//		fmt.Printf("input begins with %q\n", digitErr.Digit)
//	}
//
// Dynamically typed seams (FormatValue, TokenizeValue, WithValue)
// reject non-string values with *caseerrors.TypeError; nil input is
// reported distinctly and matches both caseerrors.ErrInputType and
// caseerrors.ErrNilInput.
//
// # Command-Line Interface
//
// In addition to the library packages, casetools provides a
// command-line interface:
//
//	# Convert a string
//	casetools convert -t kebab "Hello World"
//
//	# Tokenize a string
//	casetools tokenize "  hello  WORLD  "
//
//	# Generate a constant file from a YAML name list
//	casetools generate -t snake -pkg status -o status/names_gen.go -i names.yaml
//
//	# Run the MCP server over stdio
//	casetools mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/casetools/cmd/casetools@latest
//
// # Concurrency
//
// Tokenizer, Formatter, and Generator instances are plain structs whose
// fields are read during each call; they are safe for concurrent use as
// long as their fields are not mutated concurrently. The package-level
// convenience functions construct a fresh instance per call.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/casetools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/casetools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file
// in the repository for full details.
package casetools

package formatter

import (
	"regexp"
	"strings"

	"github.com/erraggy/casetools/caseerrors"
)

var (
	// kebabBoundary matches a lowercase letter directly followed by an
	// uppercase letter, the word boundary inside camelCase input.
	kebabBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	// kebabSeparators matches runs of whitespace and underscores.
	kebabSeparators = regexp.MustCompile(`[\s_]+`)
	// kebabHyphenRuns matches runs of two or more hyphens.
	kebabHyphenRuns = regexp.MustCompile(`-{2,}`)
)

// KebabCase converts input to kebab-case via ordered substitution
// passes over the whole string rather than the shared tokenizer:
//
//  1. Reject input that is empty or whitespace-only.
//  2. Hyphenate camelCase boundaries (a lowercase letter directly
//     followed by an uppercase letter). This runs before lowercasing,
//     which would otherwise erase the boundaries it looks for.
//  3. Lowercase the entire string.
//  4. Replace every run of whitespace and underscores with one hyphen.
//  5. Collapse hyphen runs and strip leading/trailing hyphens.
//
// Unlike the tokenizer-backed formats, kebab-case performs no
// leading-digit or word-character validation, and punctuation other
// than whitespace, underscores, and hyphens passes through unchanged.
// The result may be empty when the input consists solely of separator
// characters (for example "___").
//
// Example: "HelloWorld" -> "hello-world"
// Example: "foo_bar  baz" -> "foo-bar-baz"
func (f *Formatter) KebabCase(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &caseerrors.EmptyInputError{Input: input}
	}

	result := kebabBoundary.ReplaceAllString(trimmed, "${1}-${2}")
	result = strings.ToLower(result)
	result = kebabSeparators.ReplaceAllString(result, "-")
	result = kebabHyphenRuns.ReplaceAllString(result, "-")
	return strings.Trim(result, "-"), nil
}

package formatter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/casetools/tokenizer"
)

// Case identifies an output case format
type Case string

const (
	// CaseCamel renders words as "helloWorld"
	CaseCamel Case = "camel"
	// CasePascal renders words as "HelloWorld"
	CasePascal Case = "pascal"
	// CaseSnake renders words as "hello_world"
	CaseSnake Case = "snake"
	// CaseScreamingSnake renders words as "HELLO_WORLD"
	CaseScreamingSnake Case = "screaming-snake"
	// CaseKebab renders words as "hello-world"
	CaseKebab Case = "kebab"
	// CaseDot renders words as "hello.world"
	CaseDot Case = "dot"
	// CaseTitle renders words as "Hello World"
	CaseTitle Case = "title"
)

// ValidCases returns all valid case format strings
func ValidCases() []string {
	return []string{
		string(CaseCamel),
		string(CasePascal),
		string(CaseSnake),
		string(CaseScreamingSnake),
		string(CaseKebab),
		string(CaseDot),
		string(CaseTitle),
	}
}

// IsValidCase checks if a case format string is valid
func IsValidCase(c string) bool {
	switch Case(c) {
	case CaseCamel, CasePascal, CaseSnake, CaseScreamingSnake, CaseKebab, CaseDot, CaseTitle:
		return true
	default:
		return false
	}
}

// Formatter renders input strings into named case formats.
// All formats except kebab-case share the tokenizer front end and its
// validation contract; kebab-case runs its own substitution pipeline
// (see KebabCase).
type Formatter struct {
	// Policy selects the tokenization rules. Default: tokenizer.PolicyStrict
	Policy tokenizer.Policy
	// Logger receives debug output. Default: tokenizer.NopLogger
	Logger tokenizer.Logger
}

// New creates a Formatter with default settings
func New() *Formatter {
	return &Formatter{
		Policy: tokenizer.DefaultPolicy,
		Logger: tokenizer.NopLogger{},
	}
}

// tokenize runs the configured tokenizer over input.
func (f *Formatter) tokenize(input string) ([]string, error) {
	t := &tokenizer.Tokenizer{Policy: f.Policy, Logger: f.Logger}
	return t.Tokenize(input)
}

// CamelCase converts input to camelCase: the first word lowercased
// entirely, every subsequent word capitalized, no separator.
// Example: "Hello World" -> "helloWorld"
// Example: "hello_world" -> "helloWorld"
func (f *Formatter) CamelCase(input string) (string, error) {
	words, err := f.tokenize(input)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for i, word := range words {
		if i == 0 {
			result.WriteString(strings.ToLower(word))
			continue
		}
		result.WriteString(capitalize(word))
	}
	return result.String(), nil
}

// PascalCase converts input to PascalCase: every word capitalized, no
// separator.
// Example: "hello world" -> "HelloWorld"
func (f *Formatter) PascalCase(input string) (string, error) {
	words, err := f.tokenize(input)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for _, word := range words {
		result.WriteString(capitalize(word))
	}
	return result.String(), nil
}

// SnakeCase converts input to snake_case: every word lowercased, joined
// with underscores.
// Example: "Hello World" -> "hello_world"
func (f *Formatter) SnakeCase(input string) (string, error) {
	return f.joinLowered(input, "_")
}

// ScreamingSnakeCase converts input to SCREAMING_SNAKE_CASE: every word
// uppercased, joined with underscores.
// Example: "hello world" -> "HELLO_WORLD"
func (f *Formatter) ScreamingSnakeCase(input string) (string, error) {
	words, err := f.tokenize(input)
	if err != nil {
		return "", err
	}

	upper := make([]string, len(words))
	for i, word := range words {
		upper[i] = strings.ToUpper(word)
	}
	return strings.Join(upper, "_"), nil
}

// DotCase converts input to dot.case: every word lowercased, joined
// with a literal dot. Words are never empty, so the result has no
// leading or trailing dot.
// Example: "  hello  WORLD  " -> "hello.world"
func (f *Formatter) DotCase(input string) (string, error) {
	return f.joinLowered(input, ".")
}

// TitleCase converts input to Title Case: every word title-cased using
// the English caser from golang.org/x/text, joined with single spaces.
// Example: "hello_world" -> "Hello World"
func (f *Formatter) TitleCase(input string) (string, error) {
	words, err := f.tokenize(input)
	if err != nil {
		return "", err
	}

	caser := cases.Title(language.English)
	titled := make([]string, len(words))
	for i, word := range words {
		titled[i] = caser.String(word)
	}
	return strings.Join(titled, " "), nil
}

// joinLowered lowercases every word and joins with sep.
func (f *Formatter) joinLowered(input, sep string) (string, error) {
	words, err := f.tokenize(input)
	if err != nil {
		return "", err
	}

	lowered := make([]string, len(words))
	for i, word := range words {
		lowered[i] = strings.ToLower(word)
	}
	return strings.Join(lowered, sep), nil
}

// Format renders input in the case format c.
func (f *Formatter) Format(input string, c Case) (string, error) {
	switch c {
	case CaseCamel:
		return f.CamelCase(input)
	case CasePascal:
		return f.PascalCase(input)
	case CaseSnake:
		return f.SnakeCase(input)
	case CaseScreamingSnake:
		return f.ScreamingSnakeCase(input)
	case CaseKebab:
		return f.KebabCase(input)
	case CaseDot:
		return f.DotCase(input)
	case CaseTitle:
		return f.TitleCase(input)
	default:
		return "", fmt.Errorf("formatter: invalid case %q: must be one of: %s", c, strings.Join(ValidCases(), ", "))
	}
}

// FormatValue validates that v is a string-typed value and renders it
// in the case format c. Nil and non-string values return a
// *caseerrors.TypeError, with nil reported distinctly from wrong-type
// values.
func (f *Formatter) FormatValue(v any, c Case) (string, error) {
	s, err := tokenizer.StringValue(v)
	if err != nil {
		return "", err
	}
	return f.Format(s, c)
}

// capitalize renders word with its first rune uppercased and the
// remainder lowercased. Words from the tokenizer are never empty.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// CamelCase converts input to camelCase using the default strict
// tokenization policy. See Formatter.CamelCase.
func CamelCase(input string) (string, error) {
	return New().CamelCase(input)
}

// PascalCase converts input to PascalCase using the default strict
// tokenization policy. See Formatter.PascalCase.
func PascalCase(input string) (string, error) {
	return New().PascalCase(input)
}

// SnakeCase converts input to snake_case using the default strict
// tokenization policy. See Formatter.SnakeCase.
func SnakeCase(input string) (string, error) {
	return New().SnakeCase(input)
}

// ScreamingSnakeCase converts input to SCREAMING_SNAKE_CASE using the
// default strict tokenization policy. See Formatter.ScreamingSnakeCase.
func ScreamingSnakeCase(input string) (string, error) {
	return New().ScreamingSnakeCase(input)
}

// KebabCase converts input to kebab-case. See Formatter.KebabCase.
func KebabCase(input string) (string, error) {
	return New().KebabCase(input)
}

// DotCase converts input to dot.case using the default strict
// tokenization policy. See Formatter.DotCase.
func DotCase(input string) (string, error) {
	return New().DotCase(input)
}

// TitleCase converts input to Title Case using the default strict
// tokenization policy. See Formatter.TitleCase.
func TitleCase(input string) (string, error) {
	return New().TitleCase(input)
}

// Format renders input in the case format c using the default strict
// tokenization policy. See Formatter.Format.
func Format(input string, c Case) (string, error) {
	return New().Format(input, c)
}

// FormatValue validates that v is a string-typed value and renders it
// in the case format c using the default strict tokenization policy.
// See Formatter.FormatValue.
func FormatValue(v any, c Case) (string, error) {
	return New().FormatValue(v, c)
}

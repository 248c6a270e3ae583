package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/casetools/caseerrors"
)

// Policy defines how an input string is split into word tokens
type Policy string

const (
	// PolicyStrict trims the input, rejects a leading decimal digit,
	// reduces punctuation to word boundaries, and splits on runs of
	// whitespace and underscores
	PolicyStrict Policy = "strict"
	// PolicyAlphanumeric splits the trimmed input on every run of
	// characters that are not ASCII letters or digits, with no
	// leading-digit rejection
	PolicyAlphanumeric Policy = "alphanumeric"
)

// DefaultPolicy is the tokenization policy used when none is configured.
const DefaultPolicy = PolicyStrict

// ValidPolicies returns all valid tokenization policy strings
func ValidPolicies() []string {
	return []string{
		string(PolicyStrict),
		string(PolicyAlphanumeric),
	}
}

// IsValidPolicy checks if a policy string is valid
func IsValidPolicy(policy string) bool {
	switch Policy(policy) {
	case PolicyStrict, PolicyAlphanumeric:
		return true
	default:
		return false
	}
}

// Tokenizer splits input strings into ordered sequences of word tokens.
type Tokenizer struct {
	// Policy selects the tokenization rules. Default: PolicyStrict
	Policy Policy
	// Logger receives debug output. Default: NopLogger
	Logger Logger
}

// New creates a Tokenizer with default settings
func New() *Tokenizer {
	return &Tokenizer{
		Policy: DefaultPolicy,
		Logger: NopLogger{},
	}
}

// Tokenize splits input into an ordered sequence of word tokens using
// the configured policy. Tokens keep their original casing and appear
// in left-to-right input order. The result is never empty: inputs that
// yield no tokens return an error instead.
//
// Errors are typed values from the caseerrors package:
//   - *caseerrors.EmptyInputError when input is empty or whitespace-only
//   - *caseerrors.LeadingDigitError when the trimmed input begins with
//     a decimal digit (PolicyStrict only)
//   - *caseerrors.NoWordCharactersError when splitting yields no tokens
func (t *Tokenizer) Tokenize(input string) ([]string, error) {
	policy := t.Policy
	if policy == "" {
		policy = DefaultPolicy
	}
	if !IsValidPolicy(string(policy)) {
		return nil, fmt.Errorf("tokenizer: invalid policy %q: must be one of: %s", policy, strings.Join(ValidPolicies(), ", "))
	}
	logger := t.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &caseerrors.EmptyInputError{Input: input}
	}

	var tokens []string
	switch policy {
	case PolicyAlphanumeric:
		tokens = splitAlphanumeric(trimmed)
	default: // PolicyStrict
		first, _ := utf8.DecodeRuneInString(trimmed)
		if first >= '0' && first <= '9' {
			return nil, &caseerrors.LeadingDigitError{Input: trimmed, Digit: first}
		}
		tokens = splitStrict(trimmed)
	}

	if len(tokens) == 0 {
		return nil, &caseerrors.NoWordCharactersError{Input: trimmed, Policy: string(policy)}
	}

	logger.Debug("tokenized input", "policy", string(policy), "tokens", len(tokens))
	return tokens, nil
}

// TokenizeValue validates that v is a string-typed value and tokenizes
// it. Nil and non-string values return a *caseerrors.TypeError.
func (t *Tokenizer) TokenizeValue(v any) ([]string, error) {
	s, err := StringValue(v)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(s)
}

// Tokenize splits input using the default strict policy.
// See Tokenizer.Tokenize for the full contract.
func Tokenize(input string) ([]string, error) {
	return New().Tokenize(input)
}

// StringValue validates that a dynamically typed value is a string.
// It is the type gate for entry points that accept any-typed input:
// nil values and non-string values return a *caseerrors.TypeError,
// with nil reported distinctly from wrong-type values.
func StringValue(v any) (string, error) {
	if v == nil {
		return "", &caseerrors.TypeError{IsNil: true}
	}
	s, ok := v.(string)
	if !ok {
		return "", &caseerrors.TypeError{Value: v}
	}
	return s, nil
}

// isWordChar reports whether r is a word character: an ASCII letter,
// ASCII digit, or underscore.
func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// isASCIIAlphanumeric reports whether r is an ASCII letter or digit.
func isASCIIAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// splitStrict reduces every character that is neither a word character
// nor whitespace to a space, then splits on runs of whitespace and
// underscores. Punctuation therefore acts as a word boundary rather
// than joining its neighbors.
func splitStrict(trimmed string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if isWordChar(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, trimmed)
	return strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
}

// splitAlphanumeric splits on runs of characters that are not ASCII
// letters or digits.
func splitAlphanumeric(trimmed string) []string {
	return strings.FieldsFunc(trimmed, func(r rune) bool {
		return !isASCIIAlphanumeric(r)
	})
}

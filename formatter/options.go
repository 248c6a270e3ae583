package formatter

import (
	"fmt"
	"strings"

	"github.com/erraggy/casetools/internal/options"
	"github.com/erraggy/casetools/tokenizer"
)

// Option is a function that configures a format operation
type Option func(*formatConfig) error

// formatConfig holds configuration for a format operation
type formatConfig struct {
	// Input source (exactly one must be set)
	input *string
	value *any

	// Configuration options
	target Case
	policy tokenizer.Policy
	logger tokenizer.Logger
}

// FormatWithOptions renders an input configured with functional
// options. This combines input source selection, target case, and
// tokenization configuration in a single call.
//
// Example:
//
//	out, err := formatter.FormatWithOptions(
//	    formatter.WithInput("Hello World"),
//	    formatter.WithCase(formatter.CaseKebab),
//	)
func FormatWithOptions(opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", fmt.Errorf("formatter: invalid options: %w", err)
	}

	f := &Formatter{
		Policy: cfg.policy,
		Logger: cfg.logger,
	}

	switch {
	case cfg.input != nil:
		return f.Format(*cfg.input, cfg.target)
	case cfg.value != nil:
		return f.FormatValue(*cfg.value, cfg.target)
	default:
		// Should never reach here due to validation in applyOptions
		return "", fmt.Errorf("formatter: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*formatConfig, error) {
	cfg := &formatConfig{
		target: CaseCamel,
		policy: tokenizer.DefaultPolicy,
		logger: tokenizer.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.RequireOneInput(
		"formatter",
		[]string{"WithInput", "WithValue"},
		cfg.input != nil, cfg.value != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithInput specifies the string to format as the input source
func WithInput(input string) Option {
	return func(cfg *formatConfig) error {
		cfg.input = &input
		return nil
	}
}

// WithValue specifies a dynamically typed value as the input source.
// The value must hold a string: nil and non-string values are rejected
// with a *caseerrors.TypeError when the operation runs.
func WithValue(v any) Option {
	return func(cfg *formatConfig) error {
		cfg.value = &v
		return nil
	}
}

// WithCase sets the target case format
// Default: CaseCamel
func WithCase(c Case) Option {
	return func(cfg *formatConfig) error {
		if !IsValidCase(string(c)) {
			return fmt.Errorf("formatter: invalid case %q: must be one of: %s", c, strings.Join(ValidCases(), ", "))
		}
		cfg.target = c
		return nil
	}
}

// WithPolicy sets the tokenization policy for the tokenizer-backed
// formats. Kebab-case ignores it (see Formatter.KebabCase).
// Default: tokenizer.PolicyStrict
func WithPolicy(policy tokenizer.Policy) Option {
	return func(cfg *formatConfig) error {
		if !tokenizer.IsValidPolicy(string(policy)) {
			return fmt.Errorf("formatter: invalid policy %q: must be one of: %s", policy, strings.Join(tokenizer.ValidPolicies(), ", "))
		}
		cfg.policy = policy
		return nil
	}
}

// WithLogger sets a structured logger for debug output during
// formatting. By default, no logging is performed.
func WithLogger(l tokenizer.Logger) Option {
	return func(cfg *formatConfig) error {
		if l == nil {
			return fmt.Errorf("formatter: logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

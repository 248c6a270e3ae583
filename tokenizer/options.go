package tokenizer

import (
	"fmt"
	"strings"

	"github.com/erraggy/casetools/internal/options"
)

// Option is a function that configures a tokenize operation
type Option func(*tokenizeConfig) error

// tokenizeConfig holds configuration for a tokenize operation
type tokenizeConfig struct {
	// Input source (exactly one must be set)
	input *string
	value *any

	// Configuration options
	policy Policy
	logger Logger
}

// TokenizeWithOptions tokenizes an input configured with functional
// options. This combines input source selection and configuration in a
// single call.
//
// Example:
//
//	words, err := tokenizer.TokenizeWithOptions(
//	    tokenizer.WithInput("hello_world"),
//	    tokenizer.WithPolicy(tokenizer.PolicyAlphanumeric),
//	)
func TokenizeWithOptions(opts ...Option) ([]string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: invalid options: %w", err)
	}

	t := &Tokenizer{
		Policy: cfg.policy,
		Logger: cfg.logger,
	}

	switch {
	case cfg.input != nil:
		return t.Tokenize(*cfg.input)
	case cfg.value != nil:
		return t.TokenizeValue(*cfg.value)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("tokenizer: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*tokenizeConfig, error) {
	cfg := &tokenizeConfig{
		policy: DefaultPolicy,
		logger: NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.RequireOneInput(
		"tokenizer",
		[]string{"WithInput", "WithValue"},
		cfg.input != nil, cfg.value != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithInput specifies the string to tokenize as the input source
func WithInput(input string) Option {
	return func(cfg *tokenizeConfig) error {
		cfg.input = &input
		return nil
	}
}

// WithValue specifies a dynamically typed value as the input source.
// The value must hold a string: nil and non-string values are rejected
// with a *caseerrors.TypeError when the operation runs.
func WithValue(v any) Option {
	return func(cfg *tokenizeConfig) error {
		cfg.value = &v
		return nil
	}
}

// WithPolicy sets the tokenization policy
// Default: PolicyStrict
func WithPolicy(policy Policy) Option {
	return func(cfg *tokenizeConfig) error {
		if !IsValidPolicy(string(policy)) {
			return fmt.Errorf("tokenizer: invalid policy %q: must be one of: %s", policy, strings.Join(ValidPolicies(), ", "))
		}
		cfg.policy = policy
		return nil
	}
}

// WithLogger sets a structured logger for debug output during
// tokenization. By default, no logging is performed.
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use NewSlogAdapter to wrap a *slog.Logger.
func WithLogger(l Logger) Option {
	return func(cfg *tokenizeConfig) error {
		if l == nil {
			return fmt.Errorf("tokenizer: logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

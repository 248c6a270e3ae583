package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/internal/options"
	"github.com/erraggy/casetools/tokenizer"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	names    *[]string
	filePath *string
	data     *[]byte

	// Configuration options
	packageName string
	target      formatter.Case
	policy      tokenizer.Policy
	fileName    string
	logger      tokenizer.Logger
}

// GenerateWithOptions generates a constant file using functional
// options. This combines input source selection and configuration in a
// single function call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("status.yaml"),
//	    generator.WithPackageName("status"),
//	    generator.WithTarget(formatter.CaseSnake),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		PackageName: cfg.packageName,
		Target:      cfg.target,
		Policy:      cfg.policy,
		FileName:    cfg.fileName,
		Logger:      cfg.logger,
	}

	// Route to appropriate generation method based on input source
	switch {
	case cfg.names != nil:
		return g.Generate(*cfg.names)
	case cfg.filePath != nil:
		return g.GenerateFile(*cfg.filePath)
	case cfg.data != nil:
		return g.GenerateBytes(*cfg.data)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("generator: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		target: DefaultTarget,
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
		"generator",
		[]string{"WithNames", "WithFilePath", "WithBytes"},
		cfg.names != nil, cfg.filePath != nil, cfg.data != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithNames specifies a slice of raw names as the input source
func WithNames(names []string) Option {
	return func(cfg *generateConfig) error {
		if names == nil {
			return fmt.Errorf("generator: names cannot be nil")
		}
		cfg.names = &names
		return nil
	}
}

// WithFilePath specifies a YAML name list document path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies YAML name list document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return fmt.Errorf("generator: bytes cannot be nil")
		}
		cfg.data = &data
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
// Default: "names"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithTarget sets the case format for constant values
// Default: formatter.CaseCamel
func WithTarget(c formatter.Case) Option {
	return func(cfg *generateConfig) error {
		if !formatter.IsValidCase(string(c)) {
			return fmt.Errorf("generator: invalid case %q: must be one of: %s", c, strings.Join(formatter.ValidCases(), ", "))
		}
		cfg.target = c
		return nil
	}
}

// WithPolicy sets the tokenization policy
// Default: tokenizer.PolicyStrict
func WithPolicy(policy tokenizer.Policy) Option {
	return func(cfg *generateConfig) error {
		if !tokenizer.IsValidPolicy(string(policy)) {
			return fmt.Errorf("generator: invalid policy %q: must be one of: %s", policy, strings.Join(tokenizer.ValidPolicies(), ", "))
		}
		cfg.policy = policy
		return nil
	}
}

// WithFileName sets the generated file name
// Default: "names_gen.go"
func WithFileName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: file name cannot be empty")
		}
		cfg.fileName = name
		return nil
	}
}

// WithLogger sets a structured logger for debug output during
// generation. By default, no logging is performed.
func WithLogger(l tokenizer.Logger) Option {
	return func(cfg *generateConfig) error {
		if l == nil {
			return fmt.Errorf("generator: logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

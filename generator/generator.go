package generator

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/tokenizer"
)

const (
	// DefaultPackageName is the package name used when none is configured
	DefaultPackageName = "names"
	// DefaultFileName is the generated file name used when none is configured
	DefaultFileName = "names_gen.go"
	// DefaultTarget is the constant value case used when none is configured
	DefaultTarget = formatter.CaseCamel
)

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "names_gen.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating a constant file
type GenerateResult struct {
	// File is the generated Go source file
	File GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// Target is the case format used for constant values
	Target formatter.Case
	// GeneratedConstants is the count of constants generated
	GeneratedConstants int
}

// Generator produces Go constant files from lists of raw names. Each
// name becomes one exported string constant: the identifier is the
// PascalCase rendering of the name, the value is the name rendered in
// the configured target case. Constants appear in input order.
type Generator struct {
	// PackageName is the Go package name for generated code
	// If empty, defaults to "names"
	PackageName string

	// Target is the case format for constant values
	// Default: formatter.CaseCamel
	Target formatter.Case

	// Policy selects the tokenization rules used for both identifiers
	// and values. Default: tokenizer.PolicyStrict
	Policy tokenizer.Policy

	// FileName is the name of the generated file
	// If empty, defaults to "names_gen.go"
	FileName string

	// Logger receives debug output. Default: tokenizer.NopLogger
	Logger tokenizer.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		PackageName: DefaultPackageName,
		Target:      DefaultTarget,
		Policy:      tokenizer.DefaultPolicy,
		FileName:    DefaultFileName,
		Logger:      tokenizer.NopLogger{},
	}
}

// Generate produces a constant file from names. Every name must
// tokenize under the configured policy; names whose PascalCase
// identifiers collide are an error, because the generated file would
// not compile.
func (g *Generator) Generate(names []string) (*GenerateResult, error) {
	pkg := g.PackageName
	if pkg == "" {
		pkg = DefaultPackageName
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("generator: invalid package name %q: must be a valid Go identifier", pkg)
	}

	target := g.Target
	if target == "" {
		target = DefaultTarget
	}
	if !formatter.IsValidCase(string(target)) {
		return nil, fmt.Errorf("generator: invalid case %q: must be one of: %s", target, strings.Join(formatter.ValidCases(), ", "))
	}

	if g.Policy != "" && !tokenizer.IsValidPolicy(string(g.Policy)) {
		return nil, fmt.Errorf("generator: invalid policy %q: must be one of: %s", g.Policy, strings.Join(tokenizer.ValidPolicies(), ", "))
	}

	fileName := g.FileName
	if fileName == "" {
		fileName = DefaultFileName
	}

	logger := g.Logger
	if logger == nil {
		logger = tokenizer.NopLogger{}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("generator: no names provided")
	}

	f := &formatter.Formatter{Policy: g.Policy, Logger: logger}

	type constant struct {
		ident  string
		value  string
		source string
	}

	constants := make([]constant, 0, len(names))
	// Identifier collisions would produce a file that does not
	// compile, so they are caught here with both source names.
	seen := make(map[string]string, len(names))

	for i, name := range names {
		ident, err := f.PascalCase(name)
		if err != nil {
			return nil, fmt.Errorf("generator: name %d (%q): %w", i, name, err)
		}
		ident = ensureIdentifier(ident)

		value, err := f.Format(name, target)
		if err != nil {
			return nil, fmt.Errorf("generator: name %d (%q): %w", i, name, err)
		}

		if first, ok := seen[ident]; ok {
			return nil, fmt.Errorf("generator: duplicate identifier %q: generated from both %q and %q", ident, first, name)
		}
		seen[ident] = name

		constants = append(constants, constant{ident: ident, value: value, source: name})
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by casetools. DO NOT EDIT.\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	buf.WriteString(fmt.Sprintf("// Constant values are rendered in %s case.\n", target))
	buf.WriteString("const (\n")
	for _, c := range constants {
		buf.WriteString(fmt.Sprintf("\t// %s is %q rendered in %s case.\n", c.ident, c.source, target))
		buf.WriteString(fmt.Sprintf("\t%s = %q\n", c.ident, c.value))
	}
	buf.WriteString(")\n")

	content, err := formatSource(fileName, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generator: failed to format generated code: %w", err)
	}

	logger.Debug("generated constants",
		"package", pkg,
		"target", string(target),
		"constants", len(constants))

	return &GenerateResult{
		File:               GeneratedFile{Name: fileName, Content: content},
		PackageName:        pkg,
		Target:             target,
		GeneratedConstants: len(constants),
	}, nil
}

// GenerateNameList produces a constant file from a parsed name list
// document. The generator's PackageName takes precedence over the
// document's package field when both are set.
func (g *Generator) GenerateNameList(list *NameList) (*GenerateResult, error) {
	if list == nil {
		return nil, fmt.Errorf("generator: name list cannot be nil")
	}

	cfg := *g
	if cfg.PackageName == "" {
		cfg.PackageName = list.Package
	}
	return cfg.Generate(list.Names)
}

// GenerateFile produces a constant file from a YAML name list document
// on disk.
func (g *Generator) GenerateFile(path string) (*GenerateResult, error) {
	list, err := LoadNameList(path)
	if err != nil {
		return nil, err
	}
	return g.GenerateNameList(list)
}

// GenerateBytes produces a constant file from YAML name list document
// bytes.
func (g *Generator) GenerateBytes(data []byte) (*GenerateResult, error) {
	list, err := ParseNameList(data)
	if err != nil {
		return nil, err
	}
	return g.GenerateNameList(list)
}

// formatSource formats Go source code and automatically fixes imports.
// This ensures generated code is immediately compilable without
// requiring users to run goimports.
func formatSource(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

// ensureIdentifier makes ident a valid exported Go identifier. The
// alphanumeric tokenization policy admits names whose PascalCase form
// starts with a digit (for example "2fa setup" -> "2faSetup"); those
// get an "N" prefix.
func ensureIdentifier(ident string) string {
	first, _ := utf8.DecodeRuneInString(ident)
	if !unicode.IsLetter(first) {
		return "N" + ident
	}
	return ident
}

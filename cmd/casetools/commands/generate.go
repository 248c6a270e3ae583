package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/generator"
	"github.com/erraggy/casetools/tokenizer"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Target      string
	Policy      string
	PackageName string
	Output      string
	Input       string
	Names       stringList
}

// stringList collects repeated -n flag values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Target, "t", "camel", "case style for generated constant values")
	fs.StringVar(&flags.Target, "target", "camel", "case style for generated constant values")
	fs.StringVar(&flags.Policy, "p", "strict", "tokenization policy for name validation (strict, alphanumeric)")
	fs.StringVar(&flags.Policy, "policy", "strict", "tokenization policy for name validation (strict, alphanumeric)")
	fs.StringVar(&flags.PackageName, "pkg", "", "Go package name for the generated file (default: names)")
	fs.StringVar(&flags.PackageName, "package", "", "Go package name for the generated file (default: names)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Input, "i", "", "name list document to read (YAML or JSON)")
	fs.StringVar(&flags.Input, "input", "", "name list document to read (YAML or JSON)")
	fs.Var(&flags.Names, "n", "name to generate a constant for (repeatable)")
	fs.Var(&flags.Names, "name", "name to generate a constant for (repeatable)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools generate [flags] [-]\n\n")
		Writef(fs.Output(), "Generate a Go constants file from a list of names.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nName Sources (exactly one):\n")
		Writef(fs.Output(), "  -n name        repeatable flag, one name per use\n")
		Writef(fs.Output(), "  -i names.yaml  name list document with optional package field\n")
		Writef(fs.Output(), "  -              name list document read from stdin\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casetools generate -pkg status -n \"pending review\" -n \"approved\"\n")
		Writef(fs.Output(), "  casetools generate -t snake -pkg status -o status/names_gen.go -i names.yaml\n")
		Writef(fs.Output(), "  cat names.yaml | casetools generate -t screaming-snake -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Constant identifiers are the PascalCase rendering of each name\n")
		Writef(fs.Output(), "  - Constant values are each name rendered in the target case style\n")
		Writef(fs.Output(), "  - A package name in the document overrides the default; -pkg overrides both\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateCase(flags.Target); err != nil {
		return err
	}
	if err := ValidatePolicy(flags.Policy); err != nil {
		return err
	}

	stdinArg := fs.NArg() == 1 && fs.Arg(0) == StdinFilePath
	if fs.NArg() > 0 && !stdinArg {
		fs.Usage()
		return fmt.Errorf("generate command accepts no positional arguments except '-' for stdin")
	}

	sources := 0
	if len(flags.Names) > 0 {
		sources++
	}
	if flags.Input != "" {
		sources++
	}
	if stdinArg {
		sources++
	}
	if sources == 0 {
		fs.Usage()
		return fmt.Errorf("generate command requires names via -n, -i, or '-' for stdin")
	}
	if sources > 1 {
		return fmt.Errorf("generate command accepts only one name source (-n, -i, or '-')")
	}

	genOpts := []generator.Option{
		generator.WithTarget(formatter.Case(flags.Target)),
		generator.WithPolicy(tokenizer.Policy(flags.Policy)),
	}
	if flags.PackageName != "" {
		genOpts = append(genOpts, generator.WithPackageName(flags.PackageName))
	}

	switch {
	case len(flags.Names) > 0:
		genOpts = append(genOpts, generator.WithNames(flags.Names))
	case flags.Input != "":
		genOpts = append(genOpts, generator.WithFilePath(flags.Input))
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		genOpts = append(genOpts, generator.WithBytes(data))
	}

	result, err := generator.GenerateWithOptions(genOpts...)
	if err != nil {
		return fmt.Errorf("generating constants: %w", err)
	}

	if flags.Output != "" {
		if err := result.File.WriteFile(flags.Output); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		Writef(os.Stderr, "Generated %d constants in package %s to %s\n",
			result.GeneratedConstants, result.PackageName, flags.Output)
		return nil
	}

	// Write generated source to stdout for piping
	if _, err := os.Stdout.Write(result.File.Content); err != nil {
		return fmt.Errorf("writing generated code to stdout: %w", err)
	}

	return nil
}

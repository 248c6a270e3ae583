package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/tokenizer"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Target string
	Policy string
	Format string
}

// convertResult is the structured output payload for the convert command.
type convertResult struct {
	Input  string `json:"input"  yaml:"input"`
	Case   string `json:"case"   yaml:"case"`
	Policy string `json:"policy" yaml:"policy"`
	Output string `json:"output" yaml:"output"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Target, "t", "camel", "target case style (camel, pascal, snake, screaming-snake, kebab, dot, title)")
	fs.StringVar(&flags.Target, "target", "camel", "target case style (camel, pascal, snake, screaming-snake, kebab, dot, title)")
	fs.StringVar(&flags.Policy, "p", "strict", "tokenization policy (strict, alphanumeric)")
	fs.StringVar(&flags.Policy, "policy", "strict", "tokenization policy (strict, alphanumeric)")
	fs.StringVar(&flags.Format, "f", "text", "output format (text, json, yaml)")
	fs.StringVar(&flags.Format, "format", "text", "output format (text, json, yaml)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools convert [flags] <text|->\n\n")
		Writef(fs.Output(), "Convert text to a target case style.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nCase Styles:\n")
		Writef(fs.Output(), "  camel            helloWorld\n")
		Writef(fs.Output(), "  pascal           HelloWorld\n")
		Writef(fs.Output(), "  snake            hello_world\n")
		Writef(fs.Output(), "  screaming-snake  HELLO_WORLD\n")
		Writef(fs.Output(), "  kebab            hello-world\n")
		Writef(fs.Output(), "  dot              hello.world\n")
		Writef(fs.Output(), "  title            Hello World\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casetools convert -t kebab \"Hello World\"\n")
		Writef(fs.Output(), "  casetools convert -t snake -p alphanumeric \"v1.2.3 release\"\n")
		Writef(fs.Output(), "  casetools convert -t pascal -f json \"user profile\"\n")
		Writef(fs.Output(), "  echo \"Hello World\" | casetools convert -t dot -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - All styles except kebab tokenize the input into words first\n")
		Writef(fs.Output(), "  - kebab rewrites separators and camelCase boundaries in place\n")
		Writef(fs.Output(), "  - The strict policy rejects empty input and input starting with a digit\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one text argument or '-' for stdin")
	}

	if err := ValidateCase(flags.Target); err != nil {
		return err
	}
	if err := ValidatePolicy(flags.Policy); err != nil {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	text, err := ReadText(fs.Arg(0))
	if err != nil {
		return err
	}

	output, err := formatter.FormatWithOptions(
		formatter.WithInput(text),
		formatter.WithCase(formatter.Case(flags.Target)),
		formatter.WithPolicy(tokenizer.Policy(flags.Policy)),
	)
	if err != nil {
		return fmt.Errorf("converting text: %w", err)
	}

	if flags.Format == FormatText {
		fmt.Println(output)
		return nil
	}

	return OutputStructured(convertResult{
		Input:  text,
		Case:   flags.Target,
		Policy: flags.Policy,
		Output: output,
	}, flags.Format)
}

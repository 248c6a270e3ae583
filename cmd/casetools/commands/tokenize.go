package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/casetools/tokenizer"
)

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	Policy string
	Format string
}

// tokenizeResult is the structured output payload for the tokenize command.
type tokenizeResult struct {
	Input  string   `json:"input"  yaml:"input"`
	Policy string   `json:"policy" yaml:"policy"`
	Count  int      `json:"count"  yaml:"count"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
// Returns the FlagSet and a TokenizeFlags struct with bound flag variables.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &TokenizeFlags{}

	fs.StringVar(&flags.Policy, "p", "strict", "tokenization policy (strict, alphanumeric)")
	fs.StringVar(&flags.Policy, "policy", "strict", "tokenization policy (strict, alphanumeric)")
	fs.StringVar(&flags.Format, "f", "text", "output format (text, json, yaml)")
	fs.StringVar(&flags.Format, "format", "text", "output format (text, json, yaml)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools tokenize [flags] <text|->\n\n")
		Writef(fs.Output(), "Split text into word tokens.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casetools tokenize \"Hello, World_Wide web!\"\n")
		Writef(fs.Output(), "  casetools tokenize -p alphanumeric -f json \"v1.2.3-beta\"\n")
		Writef(fs.Output(), "  echo \"some output\" | casetools tokenize -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Text output prints one token per line\n")
		Writef(fs.Output(), "  - Tokens preserve the casing of the input\n")
		Writef(fs.Output(), "  - strict splits on whitespace and underscores, dropping punctuation\n")
		Writef(fs.Output(), "  - alphanumeric splits on any run of non-alphanumeric characters\n")
	}

	return fs, flags
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tokenize command requires exactly one text argument or '-' for stdin")
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

	tokens, err := tokenizer.TokenizeWithOptions(
		tokenizer.WithInput(text),
		tokenizer.WithPolicy(tokenizer.Policy(flags.Policy)),
	)
	if err != nil {
		return fmt.Errorf("tokenizing text: %w", err)
	}

	if flags.Format == FormatText {
		for _, token := range tokens {
			fmt.Println(token)
		}
		return nil
	}

	return OutputStructured(tokenizeResult{
		Input:  text,
		Policy: flags.Policy,
		Count:  len(tokens),
		Tokens: tokens,
	}, flags.Format)
}

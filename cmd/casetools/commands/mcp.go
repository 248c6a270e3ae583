package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/casetools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools mcp\n\n")
		Writef(fs.Output(), "Run the casetools MCP server on stdio.\n\n")
		Writef(fs.Output(), "The server exposes convert, tokenize, and cases tools to MCP clients\n")
		Writef(fs.Output(), "and blocks until the client disconnects.\n")
		Writef(fs.Output(), "\nConfiguration (environment variables):\n")
		Writef(fs.Output(), "  CASETOOLS_POLICY     default tokenization policy (default: strict)\n")
		Writef(fs.Output(), "  CASETOOLS_MAX_INPUT  maximum accepted input size in bytes (default: 65536)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the MCP client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command accepts no arguments")
	}

	return mcpserver.Run(context.Background())
}

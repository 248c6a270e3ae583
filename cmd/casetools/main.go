package main

import (
	"fmt"
	"os"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/cmd/casetools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tokenize":
		if err := commands.HandleTokenize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command suggestCommand can propose.
var knownCommands = []string{"convert", "tokenize", "generate", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough to be a plausible typo.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// levenshtein computes the edit distance between two command names.
// Commands are ASCII, so byte-wise comparison is sufficient.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`casetools - Naming Case Conversion Tools

Usage:
  casetools <command> [options]

Commands:
  convert     Convert text to a target case style
  tokenize    Split text into word tokens
  generate    Generate a Go constants file from a list of names
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Examples:
  casetools convert -t kebab "Hello World"
  casetools convert -t snake -p alphanumeric "v1.2.3 release"
  casetools tokenize -f json "Hello, World_Wide web!"
  casetools generate -t snake -pkg status -o status/names_gen.go -i names.yaml
  echo "Hello World" | casetools convert -t dot -

Run 'casetools <command> --help' for more information on a command.`)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drblallo/odl/ast"
	"github.com/drblallo/odl/diagnostic"
	"github.com/drblallo/odl/parser"
)

const usage = `odl - ODL configuration language CLI

Usage:
  odl <command> [options] <file...>

Commands:
  check    Parse and type-check ODL files
  parse    Output the AST (as JSON with --json)
  help     Show this help

Options:
  --json   Output in JSON format (where applicable)

With no file arguments, input is read from stdin.

Examples:
  odl check config.odl
  odl parse --json config.odl
  echo "const a = 1" | odl check
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "check":
		os.Exit(checkCommand(os.Args[2:]))
	case "parse":
		os.Exit(parseCommand(os.Args[2:]))
	case "help", "--help", "-h":
		fmt.Print(usage)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// readInput reads the given files (concatenated) or, with no files, stdin.
func readInput(args []string) (string, []string, error) {
	var files []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", files, err
		}
		return string(data), files, nil
	}

	var parts []string
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", files, fmt.Errorf("error reading %s: %w", path, err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), files, nil
}

// checkCommand parses and type-checks ODL input, reporting the first error
// found. odl has no error-recovering parse mode: a document either parses
// and type-checks in full, or stops at its first diagnostic.
func checkCommand(args []string) int {
	input, _, err := readInput(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	doc, lastLoc, err := parser.ParseDocumentWithLocation(input)
	if err != nil {
		d := diagnostic.FromError(err, lastLoc)
		fmt.Fprintf(os.Stderr, "%d:%d: %s\n", d.Range.Start.Line, d.Range.Start.Character, d.Message)
		fmt.Fprintf(os.Stderr, "%#v\n", err)
		return 1
	}

	if err := doc.TypeCheck(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("OK: %d declaration(s)\n", len(doc.Entries))
	return 0
}

// parseCommand outputs the parsed AST (as JSON with --json, otherwise its
// one-line-per-declaration String form), or a parse error to stderr.
func parseCommand(args []string) int {
	var jsonOutput bool
	var rest []string
	for _, a := range args {
		if a == "--json" {
			jsonOutput = true
			continue
		}
		rest = append(rest, a)
	}

	input, _, err := readInput(rest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	doc, lastLoc, err := parser.ParseDocumentWithLocation(input)
	if err != nil {
		d := diagnostic.FromError(err, lastLoc)
		fmt.Fprintf(os.Stderr, "%d:%d: %s\n", d.Range.Start.Line, d.Range.Start.Character, d.Message)
		fmt.Fprintf(os.Stderr, "%#v\n", err)
		return 1
	}

	if jsonOutput {
		return printJSON(doc)
	}

	fmt.Print(doc.String())
	return 0
}

func printJSON(doc *ast.Document) int {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "json marshal error: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

package main

import (
	"fmt"
	"os"

	"github.com/erraggy/routemcp"
	"github.com/erraggy/routemcp/cmd/routemcp/commands"
)

// commandNames lists the recognized commands for typo suggestions.
var commandNames = []string{"serve", "list", "docs", "demo", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var handler func([]string) error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("routemcp v%s\n", routemcp.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "serve":
		handler = commands.HandleServe
	case "list":
		handler = commands.HandleList
	case "docs":
		handler = commands.HandleDocs
	case "demo":
		handler = commands.HandleDemo
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "" if none is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`routemcp - MCP introspection for HTTP route tables and OpenAPI documents

Usage:
  routemcp <command> [options]

Commands:
  serve       Serve the MCP tools for an OpenAPI document over HTTP or stdio
  list        List the user-facing endpoints of an OpenAPI document
  docs        Print one endpoint's documentation with every $ref inlined
  demo        Run a demo users API with the MCP tools mounted at /mcp
  version     Show version information
  help        Show this help message

Examples:
  routemcp serve openapi.json
  routemcp serve -stdio openapi.yaml
  routemcp list -format json openapi.yaml
  routemcp docs openapi.yaml /users/{user_id} GET
  routemcp demo -addr 127.0.0.1:8000

Run 'routemcp <command> --help' for more information on a command.`)
}

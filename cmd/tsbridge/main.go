// Package main provides the CLI entrypoint for tsbridge.
//
// tsbridge derives TypeScript interface declarations from declarative API
// schema files:
//   - Schemas, field kinds, and overrides are declared per context in YAML
//   - Each schema renders to one export interface with an index signature
//   - Contexts render to declare namespace blocks
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tsbridge",
	Short: "Generate TypeScript interfaces from API schema declarations",
	Long: `tsbridge - TypeScript interface generation from API schema declarations.

Mirrors an API's wire shape on the frontend without hand-maintained
duplicate type definitions.

Examples:
  tsbridge generate -f schema.yaml -o types.d.ts   # Write declarations
  tsbridge generate -f schema.yaml --all           # All contexts to stdout
  tsbridge check -f schema.yaml                    # Validate declarations
  tsbridge kinds                                   # List built-in kinds`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsbridge/internal/config"
	"tsbridge/internal/logging"
	"tsbridge/internal/registry"
	"tsbridge/internal/render"
)

var (
	generateSchema  string
	generateOutput  string
	generateContext string
	generateAll     bool
	generatePrefix  string
	generateSuffix  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript declarations from a schema file",
	Long: `Generate TypeScript interface declarations from a YAML schema file.

Each declared context becomes a declare namespace block; each schema
becomes an export interface with an index signature covering the union of
its field types. Nested schema references resolve by name, collection
fields append [].

Examples:
  tsbridge generate -f schema.yaml                    # Default context to stdout
  tsbridge generate -f schema.yaml -o types.d.ts      # Write to file
  tsbridge generate -f schema.yaml --context internal # Specific context
  tsbridge generate -f schema.yaml --all              # Every context`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateSchema, "schema", "f", "", "Schema YAML file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringVar(&generateContext, "context", registry.DefaultContext, "Context to emit")
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Emit all contexts")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "", "Prefix for interface names")
	generateCmd.Flags().StringVar(&generateSuffix, "suffix", "", "Suffix for interface names")
	_ = generateCmd.MarkFlagRequired("schema")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.New(verbose)

	f, err := config.LoadFile(generateSchema)
	if err != nil {
		return err
	}

	reg := registry.New(registry.WithLogger(log))
	config.Apply(f, reg)

	opts := render.Options{
		Context:     generateContext,
		AllContexts: generateAll,
		Prefix:      generatePrefix,
		Suffix:      generateSuffix,
	}

	if generateOutput == "" {
		return render.NewEmitter(reg, log).Emit(os.Stdout, opts)
	}

	if err := render.Generate(generateOutput, reg, log, opts); err != nil {
		return err
	}

	fmt.Printf("Generated %s\n", generateOutput)

	return nil
}

package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"tsbridge/internal/config"
	"tsbridge/internal/logging"
	"tsbridge/internal/registry"
)

var dumpSchema string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the parsed schema file and resulting registry state",
	Long: `Dump the parsed schema file and the registry it produces.

Debugging aid for inspecting what a schema file actually registers:
context order, schema order, and the override maps consulted by each
resolution tier.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpSchema, "schema", "f", "", "Schema YAML file (required)")
	_ = dumpCmd.MarkFlagRequired("schema")
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := config.LoadFile(dumpSchema)
	if err != nil {
		return err
	}

	reg := registry.New(registry.WithLogger(logging.New(verbose)))
	config.Apply(f, reg)

	spew.Dump(f)
	spew.Dump(reg)

	return nil
}

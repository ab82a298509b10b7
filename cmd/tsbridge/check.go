package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tsbridge/internal/config"
)

var checkSchema string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a schema file and report findings",
	Long: `Validate a YAML schema file without generating output.

Reports dangling nested references, kinds that will silently widen to
"any", duplicate schema declarations, and malformed entries. Exits
non-zero only on errors; warnings do not fail the check.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkSchema, "schema", "f", "", "Schema YAML file (required)")
	_ = checkCmd.MarkFlagRequired("schema")
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := config.LoadFile(checkSchema)
	if err != nil {
		return err
	}

	diags := config.Validate(f)

	for _, d := range diags.All() {
		fmt.Printf("%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", checkSchema, len(diags.Errors))
	}

	fmt.Printf("%s: ok (%d warning(s))\n", checkSchema, len(diags.Warnings))

	return nil
}

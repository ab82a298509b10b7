package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"tsbridge/internal/mappings"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the built-in field kind table",
	Run:   runKinds,
}

func runKinds(cmd *cobra.Command, args []string) {
	kinds := mappings.Kinds()
	sort.Strings(kinds)

	for _, kind := range kinds {
		fmt.Printf("%-18s %s\n", kind, mappings.Lookup(kind))
	}

	fmt.Printf("%-18s %s (fallback)\n", "<unknown>", mappings.Fallback)
}

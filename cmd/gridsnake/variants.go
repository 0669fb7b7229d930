package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the playable variants",
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		marker := ""
		if v.ID == app.Config.Variant() {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, v.ID, v.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'gridsnake play <id>' to play a variant.")
}

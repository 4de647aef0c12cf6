package envaudit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats [source-path]",
	Short: "Show environment variable statistics for a source tree",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sourcePath := "."
		if len(args) > 0 {
			sourcePath = args[0]
		}

		if err := runStats(cmd, sourcePath); err != nil {
			fmt.Fprintf(os.Stderr, "Stats failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runStats(cmd *cobra.Command, sourcePath string) error {
	reg, err := scanTree(cmd.Context(), sourcePath, false)
	if err != nil {
		return err
	}

	byCategory := make(map[string]int)
	for _, rec := range reg.Records() {
		byCategory[rec.Category]++
	}

	fmt.Println("\nBy category:")
	for _, category := range types.CategoryOrder {
		if count := byCategory[category]; count > 0 {
			fmt.Printf("  %s: %d\n", category, count)
		}
	}

	fmt.Println("\nRequired variables:")
	for _, rec := range reg.Records() {
		if !rec.Required {
			continue
		}
		marker := ""
		if rec.Sensitive {
			marker = " [SENSITIVE]"
		}
		fmt.Printf("  %s%s\n", rec.Name, marker)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

package envaudit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/indiekitai/env-audit/internal/audit"
)

var (
	addValue       string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add NAME [source-path]",
	Short: "Add a variable to .env.example",
	Long: `Add appends a documented entry to .env.example, creating the file when it
does not exist. The example value and description are guessed from the
variable name unless given explicitly.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		sourcePath := "."
		if len(args) > 1 {
			sourcePath = args[1]
		}

		docPath := filepath.Join(sourcePath, ".env.example")
		doc, err := os.ReadFile(docPath)
		if err != nil && !os.IsNotExist(err) {
			return err
		}

		updated, err := audit.AddToDoc(doc, name, addValue, addDescription)
		if err != nil {
			return err
		}
		if err := os.WriteFile(docPath, updated, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Added %s to %s\n", name, docPath)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addValue, "value", "", "example value (guessed from the name if omitted)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "doc comment (guessed from the name if omitted)")
	rootCmd.AddCommand(addCmd)
}

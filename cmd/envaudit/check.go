package envaudit

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indiekitai/env-audit/internal/audit"
	"github.com/indiekitai/env-audit/internal/filesystems"
)

var checkCmd = &cobra.Command{
	Use:   "check [source-path]",
	Short: "Verify that every referenced environment variable is documented",
	Long: `Check scans the source tree and compares the result against the env files
at the root (.env, .env.local, .env.example, .env.development). It exits
with status 1 when undocumented variables exist, which makes it suitable
for CI.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sourcePath := "."
		if len(args) > 0 {
			sourcePath = args[0]
		}

		if err := runCheck(cmd, sourcePath); err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runCheck(cmd *cobra.Command, sourcePath string) error {
	reg, err := scanTree(cmd.Context(), sourcePath, true)
	if err != nil {
		return err
	}

	documented, err := audit.DocumentedVars(filesystems.NewLocalFS(), sourcePath)
	if err != nil {
		return err
	}

	diff := audit.Diff(reg, documented)
	if diff.Clean {
		fmt.Fprintf(os.Stderr, "All %d environment variables are documented.\n", reg.Len())
		return nil
	}

	fmt.Fprintf(os.Stderr, "Found %d undocumented environment variables:\n", len(diff.Undocumented))
	for _, name := range diff.Undocumented {
		rec, ok := reg.Get(name)
		if !ok {
			continue
		}

		req := "optional"
		if rec.Required {
			req = "required"
		}
		sens := ""
		if rec.Sensitive {
			sens = ", sensitive"
		}
		files := rec.Files
		if len(files) > 2 {
			files = files[:2]
		}
		fmt.Fprintf(os.Stderr, "  - %s (%s%s) in %s\n", name, req, sens, strings.Join(files, ", "))
	}
	for _, name := range diff.Stale {
		fmt.Fprintf(os.Stderr, "  note: %s is documented but no longer referenced\n", name)
	}
	fmt.Fprintln(os.Stderr, "\nRun 'env-audit -o .env.example' to generate documentation.")

	os.Exit(1)
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

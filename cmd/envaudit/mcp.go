package envaudit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/indiekitai/env-audit/internal/agent"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server for AI agents",
	Long: `Serve the audit pipeline over stdio as MCP tools:
  env_audit_scan  - scan a project for environment variables
  env_audit_check - check that all variables are documented
  env_audit_add   - add a variable to .env.example`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := agent.Serve(version); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

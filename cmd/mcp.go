package cmd

import (
	"github.com/alutools/dieprofile/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the dieprofile MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents score profiles and list the rules.
Flags and config file values become the defaults of every tool call.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, version)
	},
}

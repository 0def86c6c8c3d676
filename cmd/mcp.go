package cmd

import (
	"github.com/huangsam/branchscope/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Branchscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to perform branch analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate the base configuration up front so every tool call
		// starts from a known-good repository and threshold.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

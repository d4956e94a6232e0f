package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC. Tool calls share a single
voice session, so a "switch to reading" dispatch is remembered by the next
call. Spoken messages are echoed to stderr.

Tools:
  dispatch          - handle a transcript and process one frame
  active_mode       - report the session's current mode
  reset_session     - start over in the configured initial mode
  choose_direction  - run the navigation heuristic on bounding boxes

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "sightline": {
        "command": "/path/to/sightline",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Sessions: sessionFactory,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/mcp"
	"github.com/custodia-labs/unitconv/internal/logger"
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

Tools:
  convert      - convert a value between two units of a category
  circle_area  - compute the area of a circle

Resources:
  unitconv://categories                    - categories with their units
  unitconv://categories/{category}/units   - units of one category

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead; requests are rate limited
per client by the server.rate_limit setting.

Examples:
  # Stdio mode (default)
  unitconv mcp serve

  # HTTP mode
  unitconv mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "unitconv": {
        "command": "/path/to/unitconv",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Converter: converterService})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	if port > 0 {
		logger.SetTimestamps(true)
		logger.Section("MCP HTTP server")
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr, serverSettings().RateLimit)
	}

	return server.Run(ctx)
}

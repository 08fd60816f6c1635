package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can read the
draft, set variable values and review redlines.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead, for the MCP Inspector or remote access.
The working session is saved when the server stops.

Examples:
  # Stdio mode (default)
  suppdraft mcp serve

  # HTTP mode
  suppdraft mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "suppdraft": {
        "command": "/path/to/suppdraft",
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

// mcpPorts builds the MCP ports from the installed services, leaving
// optional ports nil when their service is absent.
func mcpPorts() *mcp.Ports {
	ports := &mcp.Ports{Draft: draftService}
	if finalService != nil && finalService.Available() {
		ports.Final = finalService
	}
	if lintService != nil {
		ports.Lint = lintService
	}
	return ports
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if err := requireDraft(); err != nil {
		return err
	}

	server, err := mcp.NewServer(mcpPorts())
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		err = server.RunHTTP(cmd.Context(), addr)
	} else {
		err = server.Run(cmd.Context())
	}
	if err != nil {
		return err
	}
	return persist(cmd)
}

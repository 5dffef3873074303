package cli

import (
	mcpadapter "github.com/ccwkit/ccwkit/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the CCWKit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start CCWKit MCP server (stdio)",
		Long:  "Start the CCWKit MCP server using stdio transport. This lets assistants score response sets, resolve profiles, and inspect the catalog. All computation stays in-process.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = loadEnvConfig().Catalog
			}
			s := mcpadapter.NewCCWKitMCPServer(catalogPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (defaults to the embedded CCW instrument)")

	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/oas-examples/internal/mcp"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the example catalog to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Stdout carries the protocol; progress bars would corrupt it.
		verbose = true
		cat, err := catalogForServing(cmd.Context(), cfg, cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "oasexamples MCP server started on stdio (versions=%d, examples=%d)\n",
			len(cat.Labels()), cat.Count())

		srv := mcpserver.NewServer(cat, viewer.LinksFromConfig(cfg))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

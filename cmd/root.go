package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "oasexamples",
	Short: "Browse a curated collection of OpenAPI and Swagger example definitions",
	Long: `oasexamples loads a declared set of OpenAPI/Swagger example files, grouped
by specification version, and publishes them as a static viewer site with
version tabs, a JSON/YAML toggle and copy-to-clipboard. The same catalog is
available over a small HTTP API, live websocket sessions and MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

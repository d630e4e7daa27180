package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site with the catalog API and live viewer sessions",
	Long: `Serves a previously built site together with /api/catalog, /api/examples
and the /ws/viewer websocket. The catalog comes from the latest recorded build,
or from the example files when the site has no build history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.OutputDir
		}
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Port
		}
		open, _ := cmd.Flags().GetBool("open")

		cat, err := catalogForServing(cmd.Context(), cfg, dir)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		return serveCatalog(cfg, cat, dir, port, open)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to port)")
	serveCmd.Flags().String("dir", "", "built site directory (defaults to output_dir)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

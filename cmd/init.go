package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize oasexamples configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the examples directory, the published versions and the site settings, and writes a .oasexamples.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

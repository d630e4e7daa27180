package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [examples-dir]",
	Short: "Suggest a versions list from the example files on disk",
	Long: `Scans <examples-dir>/<version>/*.json files that have a .yaml sibling and
prints a suggested versions list with guessed titles. With --write the list
replaces the versions in the config file. Review the titles before publishing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		dir := cfg.ExamplesDir
		if len(args) == 1 {
			dir = args[0]
		}

		versions, err := config.Scaffold(dir)
		if err != nil {
			return err
		}

		write, _ := cmd.Flags().GetBool("write")
		if !write {
			out, err := yaml.Marshal(struct {
				Versions []config.VersionConfig `yaml:"versions"`
			}{versions})
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		}

		cfg.ExamplesDir = dir
		cfg.Versions = versions
		if !slices.Contains(cfg.VersionLabels(), cfg.DefaultVersion) {
			cfg.DefaultVersion = ""
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("scaffolded config is invalid: %w", err)
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}

		count := 0
		for _, v := range versions {
			count += len(v.Examples)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d versions (%d examples) to %s\n", len(versions), count, cfgFile)
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().Bool("write", false, "write the suggested versions into the config file")
	rootCmd.AddCommand(scaffoldCmd)
}

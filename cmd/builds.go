package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "List recorded catalog builds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.OutputDir
		}
		if _, err := os.Stat(filepath.Join(dir, buildDBName)); os.IsNotExist(err) {
			return fmt.Errorf("no build history in %s\nRun `oasexamples build` first", dir)
		}

		database, store, err := openBuildStore(dir)
		if err != nil {
			return err
		}
		defer database.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		builds, err := store.ListBuilds(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(builds) == 0 {
			fmt.Println("No builds recorded.")
			return nil
		}

		fmt.Printf("%-36s  %-25s  %8s  %8s  %s\n", "ID", "BUILT", "VERSIONS", "EXAMPLES", "EXAMPLES DIR")
		for _, b := range builds {
			fmt.Printf("%-36s  %-25s  %8d  %8d  %s\n",
				b.ID, b.BuiltAt.Local().Format(time.RFC3339), b.VersionCount, b.ExampleCount, b.ExamplesDir)
		}
		return nil
	},
}

func init() {
	buildsCmd.Flags().String("dir", "", "built site directory (defaults to output_dir)")
	buildsCmd.Flags().Int("limit", 10, "maximum number of builds to list")
	rootCmd.AddCommand(buildsCmd)
}

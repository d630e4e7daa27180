package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oas-examples/internal/progress"
	"github.com/ziadkadry99/oas-examples/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load the example catalog and generate the static viewer site",
	Long: `Reads every example declared in the config, renders one page per example
plus the landing page, writes catalog.json and the raw example copies, and
records the build in the site's build history.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("serve", false, "start the local server after building")
	buildCmd.Flags().Int("port", 0, "port for the local server (defaults to port)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	buildCmd.Flags().Int("keep", 20, "number of builds to keep in the build history (0 keeps all)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx := cmd.Context()
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading examples: %w", err)
	}

	generator := site.NewSiteGenerator(cat, cfg, outputDir)
	if !verbose {
		generator.Reporter = progress.NewReporter("Rendering pages")
	}
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	database, store, err := openBuildStore(outputDir)
	if err != nil {
		return err
	}
	defer database.Close()

	build, err := store.SaveBuild(ctx, cat, cfg.ExamplesDir)
	if err != nil {
		return fmt.Errorf("recording build: %w", err)
	}
	if keep, _ := cmd.Flags().GetInt("keep"); keep > 0 {
		if pruned, err := store.Prune(ctx, keep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not prune build history: %v\n", err)
		} else if pruned > 0 && verbose {
			fmt.Fprintf(os.Stderr, "Pruned %d old build(s)\n", pruned)
		}
	}

	fmt.Printf("Static site generated: %s (%d pages, %d examples across %d versions)\n",
		outputDir, pageCount, cat.Count(), len(cat.Labels()))
	fmt.Printf("Build %s recorded\n", build.ID)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	open, _ := cmd.Flags().GetBool("open")
	return serveCatalog(cfg, cat, outputDir, port, open)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/config"
	"github.com/ziadkadry99/oas-examples/internal/db"
	"github.com/ziadkadry99/oas-examples/internal/progress"
	"github.com/ziadkadry99/oas-examples/internal/server"
	"github.com/ziadkadry99/oas-examples/internal/session"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

// buildDBName is the build history database written next to the site.
const buildDBName = "catalog.db"

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `oasexamples init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog reads every configured example file with progress feedback.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	loader := catalog.NewLoader(cfg)

	var reporter progress.Reporter = progress.Nop{}
	if verbose {
		loader.OnProgress = func(done, total int, name string) {
			fmt.Fprintf(os.Stderr, "  [%d/%d] %s\n", done, total, name)
		}
	} else {
		reporter = progress.NewReporter("Loading examples")
		loader.OnProgress = func(done, total int, name string) {
			reporter.Update(done, name)
		}
	}

	total := 0
	for _, v := range cfg.Versions {
		total += len(v.Examples)
	}
	reporter.Start(total)
	cat, err := loader.Load(ctx)
	reporter.Finish()
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// openBuildStore opens the build history database of a site directory.
func openBuildStore(siteDir string) (*db.DB, *catalog.Store, error) {
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return nil, nil, err
	}
	database, err := db.Open(filepath.Join(siteDir, buildDBName))
	if err != nil {
		return nil, nil, fmt.Errorf("opening build history: %w", err)
	}
	return database, catalog.NewStore(database), nil
}

// catalogForServing prefers the latest persisted build of siteDir and falls
// back to reading the example files.
func catalogForServing(ctx context.Context, cfg *config.Config, siteDir string) (*catalog.Catalog, error) {
	dbPath := filepath.Join(siteDir, buildDBName)
	if _, err := os.Stat(dbPath); err == nil {
		database, store, err := openBuildStore(siteDir)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		build, cat, err := store.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading latest build: %w", err)
		}
		if cat != nil {
			fmt.Fprintf(os.Stderr, "Using build %s from %s (%d examples)\n",
				build.ID, build.BuiltAt.Local().Format(time.RFC3339), build.ExampleCount)
			return cat, nil
		}
	}

	fmt.Fprintf(os.Stderr, "No build history in %s, reading examples from %s\n", siteDir, cfg.ExamplesDir)
	return loadCatalog(ctx, cfg)
}

// serveCatalog runs the HTTP server until SIGINT/SIGTERM.
func serveCatalog(cfg *config.Config, cat *catalog.Catalog, siteDir string, port int, open bool) error {
	srv := server.New(server.Config{
		Port:     port,
		SiteDir:  siteDir,
		AllowAll: true,
	})

	catalog.RegisterRoutes(srv.Router(), cat)
	sessions := session.New(cat, viewer.LinksFromConfig(cfg), cfg.DefaultVersion)
	sessions.RegisterRoutes(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	if open {
		go openBrowser(url)
	}

	fmt.Fprintf(os.Stderr, "oasexamples server %s serving %s at %s\n", Version, siteDir, url)
	fmt.Fprintf(os.Stderr, "  Versions: %d, examples: %d\n", len(cat.Labels()), cat.Count())
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

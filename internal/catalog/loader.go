package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

// ErrMissingExample marks a configured example whose file does not exist.
var ErrMissingExample = errors.New("configured example file is missing")

// LoadError names the example file that stopped a load.
type LoadError struct {
	Version    string
	Identifier string
	Path       string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s example %q from %s: %v", e.Version, e.Identifier, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ProgressFunc is called after each example pair has been read.
type ProgressFunc func(done, total int, name string)

// Loader reads the configured example files from BaseDir, laid out as
// <BaseDir>/<version>/<identifier>.json and .yaml.
type Loader struct {
	BaseDir     string
	Versions    []config.VersionConfig
	Concurrency int
	OnProgress  ProgressFunc
}

// NewLoader creates a Loader for the examples configured in cfg.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		BaseDir:     cfg.ExamplesDir,
		Versions:    cfg.Versions,
		Concurrency: cfg.MaxConcurrency,
	}
}

type loadJob struct {
	version int
	example int
}

// Load reads every configured example pair concurrently and returns the
// catalog. The first failure cancels outstanding reads and no catalog is
// returned.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	concurrency := l.Concurrency
	if concurrency < 1 {
		concurrency = 4
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Each job writes only its own slot, so results need no lock.
	results := make([][]ExampleRecord, len(l.Versions))
	var jobs []loadJob
	for vi, v := range l.Versions {
		results[vi] = make([]ExampleRecord, len(v.Examples))
		for ei := range v.Examples {
			jobs = append(jobs, loadJob{version: vi, example: ei})
		}
	}
	total := len(jobs)

	sem := make(chan struct{}, concurrency)
	var (
		wg        sync.WaitGroup
		errOnce   sync.Once
		firstErr  error
		processed int64
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for _, job := range jobs {
		select {
		case <-ctx.Done():
		case sem <- struct{}{}:
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(j loadJob) {
			defer wg.Done()
			defer func() { <-sem }()

			v := l.Versions[j.version]
			ex := v.Examples[j.example]
			rec, err := l.readExample(ctx, v.Label, ex)
			if err != nil {
				fail(err)
				return
			}
			results[j.version][j.example] = rec

			count := atomic.AddInt64(&processed, 1)
			if l.OnProgress != nil {
				l.OnProgress(int(count), total, v.Label+"/"+ex.ID)
			}
		}(job)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// The parent context was cancelled before any read failed.
	if err := ctx.Err(); err != nil && int(processed) < total {
		return nil, err
	}

	versions := make([]Version, len(l.Versions))
	for vi, v := range l.Versions {
		versions[vi] = Version{Label: v.Label, Examples: results[vi]}
	}
	return New(versions)
}

// readExample loads one JSON/YAML pair. The JSON is re-indented with two
// spaces, keeping key order; the YAML is kept byte for byte.
func (l *Loader) readExample(ctx context.Context, version string, ex config.ExampleConfig) (ExampleRecord, error) {
	if err := ctx.Err(); err != nil {
		return ExampleRecord{}, err
	}

	jsonPath := filepath.Join(l.BaseDir, version, ex.ID+".json")
	yamlPath := filepath.Join(l.BaseDir, version, ex.ID+".yaml")
	loadErr := func(path string, err error) error {
		return &LoadError{Version: version, Identifier: ex.ID, Path: path, Err: err}
	}

	rawJSON, err := readFile(jsonPath)
	if err != nil {
		return ExampleRecord{}, loadErr(jsonPath, err)
	}
	pretty, err := indentJSON(rawJSON)
	if err != nil {
		return ExampleRecord{}, loadErr(jsonPath, err)
	}

	rawYAML, err := readFile(yamlPath)
	if err != nil {
		return ExampleRecord{}, loadErr(yamlPath, err)
	}
	if len(bytes.TrimSpace(rawYAML)) == 0 {
		return ExampleRecord{}, loadErr(yamlPath, errors.New("file is empty"))
	}

	return ExampleRecord{
		Identifier:  ex.ID,
		DisplayName: ex.Name,
		JSONText:    pretty,
		YAMLText:    string(rawYAML),
	}, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissingExample
	}
	return data, err
}

// indentJSON validates src and re-serializes it with two-space indentation.
func indentJSON(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	if !json.Valid(src) {
		return "", errors.New("malformed JSON")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", "  "); err != nil {
		return "", fmt.Errorf("indenting JSON: %w", err)
	}
	return buf.String(), nil
}

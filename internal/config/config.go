package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "OASEXAMPLES_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (OASEXAMPLES_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: OASEXAMPLES_OUTPUT_DIR -> output_dir,
	// a double underscore descends one level.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists given in the file replace the defaults instead of merging
	// element-wise into them.
	if k.Exists("versions") {
		cfg.Versions = nil
	}
	if k.Exists("viewer_unsupported_versions") {
		cfg.ViewerUnsupportedVersions = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ExamplesDir == "" {
		return fmt.Errorf("examples_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if len(c.Versions) == 0 {
		return fmt.Errorf("at least one version must be configured")
	}

	labels := make(map[string]bool, len(c.Versions))
	for i, v := range c.Versions {
		if v.Label == "" {
			return fmt.Errorf("versions[%d]: label is required", i)
		}
		if labels[v.Label] {
			return fmt.Errorf("duplicate version %q", v.Label)
		}
		labels[v.Label] = true
		if strings.ContainsAny(v.Label, `/\`) {
			return fmt.Errorf("version %q: label must not contain a path separator", v.Label)
		}

		if len(v.Examples) == 0 {
			return fmt.Errorf("version %q: no examples configured", v.Label)
		}
		ids := make(map[string]bool, len(v.Examples))
		for j, ex := range v.Examples {
			if ex.ID == "" {
				return fmt.Errorf("version %q: examples[%d]: id is required", v.Label, j)
			}
			if strings.ContainsAny(ex.ID, `/\`) || ex.ID == "." || ex.ID == ".." {
				return fmt.Errorf("version %q: invalid example id %q", v.Label, ex.ID)
			}
			if ids[ex.ID] {
				return fmt.Errorf("version %q: duplicate example %q", v.Label, ex.ID)
			}
			ids[ex.ID] = true
			if strings.TrimSpace(ex.Name) == "" {
				return fmt.Errorf("version %q: example %q has no name", v.Label, ex.ID)
			}
		}
	}

	if c.DefaultVersion != "" && !labels[c.DefaultVersion] {
		return fmt.Errorf("default_version %q is not a configured version", c.DefaultVersion)
	}

	return nil
}

package config

// ExampleConfig declares one example file pair by its filename stem and the
// title shown in the sidebar.
type ExampleConfig struct {
	ID   string `yaml:"id" koanf:"id"`
	Name string `yaml:"name" koanf:"name"`
}

// VersionConfig declares the ordered examples published for one OAS version.
type VersionConfig struct {
	Label    string          `yaml:"label" koanf:"label"`
	Examples []ExampleConfig `yaml:"examples" koanf:"examples"`
}

// Config is the top-level configuration, corresponding to .oasexamples.yml.
type Config struct {
	ExamplesDir               string          `yaml:"examples_dir" koanf:"examples_dir"`
	OutputDir                 string          `yaml:"output_dir" koanf:"output_dir"`
	SiteTitle                 string          `yaml:"site_title" koanf:"site_title"`
	Tagline                   string          `yaml:"tagline" koanf:"tagline"`
	IntroFile                 string          `yaml:"intro_file,omitempty" koanf:"intro_file"`
	RepoURL                   string          `yaml:"repo_url" koanf:"repo_url"`
	RawURL                    string          `yaml:"raw_url" koanf:"raw_url"`
	ViewerURL                 string          `yaml:"viewer_url" koanf:"viewer_url"`
	ViewerUnsupportedVersions []string        `yaml:"viewer_unsupported_versions" koanf:"viewer_unsupported_versions"`
	DefaultVersion            string          `yaml:"default_version,omitempty" koanf:"default_version"`
	HighlightStyle            string          `yaml:"highlight_style" koanf:"highlight_style"`
	MaxConcurrency            int             `yaml:"max_concurrency" koanf:"max_concurrency"`
	Port                      int             `yaml:"port" koanf:"port"`
	Versions                  []VersionConfig `yaml:"versions" koanf:"versions"`
}

// VersionLabels returns the configured version labels in declared order.
func (c *Config) VersionLabels() []string {
	labels := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		labels[i] = v.Label
	}
	return labels
}

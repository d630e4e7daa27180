package config

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".oasexamples.yml"

// DefaultRawURL points at the upstream oas-examples repository. Placeholders
// are {version}, {format} and {identifier}.
const DefaultRawURL = "https://raw.githubusercontent.com/readmeio/oas-examples/main/{version}/{format}/{identifier}.{format}"

// DefaultViewerURL opens a raw document in the ReadMe API explorer. {url} is
// replaced with the query-escaped raw URL.
const DefaultViewerURL = "https://bin.readme.com/?url={url}"

// defaultVersions is the published example set, in navigation order.
var defaultVersions = []VersionConfig{
	{
		Label: "2.0",
		Examples: []ExampleConfig{
			{ID: "petstore", Name: "Petstore"},
			{ID: "petstore-simple", Name: "Petstore Simple"},
			{ID: "petstore-minimal", Name: "Petstore Minimal"},
			{ID: "petstore-expanded", Name: "Petstore Expanded"},
			{ID: "readme-extensions", Name: "ReadMe Extensions"},
			{ID: "security", Name: "Security"},
		},
	},
	{
		Label: "3.0",
		Examples: []ExampleConfig{
			{ID: "petstore", Name: "Petstore"},
			{ID: "petstore-simple", Name: "Petstore Simple"},
			{ID: "petstore-expanded", Name: "Petstore Expanded"},
			{ID: "readme-extensions", Name: "ReadMe Extensions"},
			{ID: "callbacks", Name: "Callbacks"},
			{ID: "circular", Name: "Circular references"},
			{ID: "complex-nesting", Name: "Complex nesting"},
			{ID: "discriminators", Name: "Discriminators"},
			{ID: "parameters-style", Name: "Parameter styles"},
			{ID: "polymorphism", Name: "Polymorphism"},
			{ID: "request-examples", Name: "Request examples"},
			{ID: "response-examples", Name: "Response examples"},
			{ID: "schema-types", Name: "Schema types"},
			{ID: "security", Name: "Security"},
			{ID: "server-variables", Name: "Server variables"},
		},
	},
	{
		Label: "3.1",
		Examples: []ExampleConfig{
			{ID: "petstore", Name: "Petstore"},
			{ID: "readme-extensions", Name: "ReadMe Extensions"},
			{ID: "schema-types", Name: "Schema types"},
			{ID: "webhooks", Name: "Webhooks"},
		},
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ExamplesDir:               "examples",
		OutputDir:                 "public",
		SiteTitle:                 "Petstore",
		Tagline:                   "A collection of OAS example files",
		RepoURL:                   "https://github.com/readmeio/oas-examples",
		RawURL:                    DefaultRawURL,
		ViewerURL:                 DefaultViewerURL,
		ViewerUnsupportedVersions: []string{"2.0"},
		HighlightStyle:            "dracula",
		MaxConcurrency:            8,
		Port:                      8080,
		Versions:                  cloneVersions(defaultVersions),
	}
}

func cloneVersions(in []VersionConfig) []VersionConfig {
	out := make([]VersionConfig, len(in))
	for i, v := range in {
		out[i] = VersionConfig{
			Label:    v.Label,
			Examples: append([]ExampleConfig(nil), v.Examples...),
		}
	}
	return out
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

// writeExample creates <dir>/<version>/<id>.json and .yaml.
func writeExample(t *testing.T, dir, version, id, jsonText, yamlText string) {
	t.Helper()
	vdir := filepath.Join(dir, version)
	if err := os.MkdirAll(vdir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(vdir, id+".json"), []byte(jsonText), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(vdir, id+".yaml"), []byte(yamlText), 0o644); err != nil {
		t.Fatal(err)
	}
}

// sampleTree writes three versions with two examples each and returns the
// matching configuration.
func sampleTree(t *testing.T) (string, []config.VersionConfig) {
	t.Helper()
	dir := t.TempDir()
	versions := []config.VersionConfig{
		{Label: "2.0", Examples: []config.ExampleConfig{
			{ID: "petstore", Name: "Petstore"},
			{ID: "petstore-simple", Name: "Petstore Simple"},
		}},
		{Label: "3.0", Examples: []config.ExampleConfig{
			{ID: "petstore", Name: "Petstore"},
			{ID: "callbacks", Name: "Callbacks"},
		}},
		{Label: "3.1", Examples: []config.ExampleConfig{
			{ID: "webhooks", Name: "Webhooks"},
			{ID: "petstore", Name: "Petstore"},
		}},
	}
	for _, v := range versions {
		for _, ex := range v.Examples {
			writeExample(t, dir, v.Label, ex.ID,
				`{"openapi":"`+v.Label+`","info":{"title":"`+ex.Name+`"}}`,
				"openapi: "+v.Label+"\ninfo:\n  title: "+ex.Name+"\n")
		}
	}
	return dir, versions
}

func removeFile(path string) error { return os.Remove(path) }

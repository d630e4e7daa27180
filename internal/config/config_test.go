package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ExamplesDir != "examples" {
		t.Errorf("expected default examples_dir %q, got %q", "examples", cfg.ExamplesDir)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.RawURL != DefaultRawURL {
		t.Errorf("expected default raw_url, got %q", cfg.RawURL)
	}
	labels := cfg.VersionLabels()
	want := []string{"2.0", "3.0", "3.1"}
	if len(labels) != len(want) {
		t.Fatalf("versions = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("versions[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
	if cfg.Versions[0].Examples[0].ID != "petstore" {
		t.Errorf("first 2.0 example = %q, want petstore", cfg.Versions[0].Examples[0].ID)
	}
}

func TestDefaultConfigIsolated(t *testing.T) {
	a := DefaultConfig()
	a.Versions[0].Examples[0].Name = "changed"
	b := DefaultConfig()
	if b.Versions[0].Examples[0].Name == "changed" {
		t.Error("DefaultConfig should not share example slices between calls")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.oasexamples.yml")

	original := DefaultConfig()
	original.OutputDir = "site"
	original.DefaultVersion = "3.1"
	original.Versions = []VersionConfig{
		{Label: "3.1", Examples: []ExampleConfig{{ID: "webhooks", Name: "Webhooks"}}},
	}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.DefaultVersion != "3.1" {
		t.Errorf("default_version: got %q, want %q", loaded.DefaultVersion, "3.1")
	}
	// The file's version list replaces the bundled one entirely.
	if len(loaded.Versions) != 1 {
		t.Fatalf("versions length: got %d, want 1", len(loaded.Versions))
	}
	if len(loaded.Versions[0].Examples) != 1 || loaded.Versions[0].Examples[0].ID != "webhooks" {
		t.Errorf("versions[0].examples: got %+v", loaded.Versions[0].Examples)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if len(cfg.Versions) != 3 {
		t.Errorf("expected bundled versions, got %d", len(cfg.Versions))
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("OASEXAMPLES_OUTPUT_DIR", "dist")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "dist")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("versions: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty examples dir", func(c *Config) { c.ExamplesDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"negative concurrency", func(c *Config) { c.MaxConcurrency = -1 }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"no versions", func(c *Config) { c.Versions = nil }},
		{"empty label", func(c *Config) { c.Versions[0].Label = "" }},
		{"duplicate label", func(c *Config) { c.Versions[1].Label = c.Versions[0].Label }},
		{"label with slash", func(c *Config) { c.Versions[0].Label = "2.0/json" }},
		{"no examples", func(c *Config) { c.Versions[0].Examples = nil }},
		{"empty id", func(c *Config) { c.Versions[0].Examples[0].ID = "" }},
		{"id with separator", func(c *Config) { c.Versions[0].Examples[0].ID = "../petstore" }},
		{"duplicate id", func(c *Config) { c.Versions[0].Examples[1].ID = c.Versions[0].Examples[0].ID }},
		{"blank name", func(c *Config) { c.Versions[0].Examples[0].Name = "  " }},
		{"unknown default version", func(c *Config) { c.DefaultVersion = "4.0" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("3.0/callbacks.json", `{"info":{"title":"Callbacks demo"}}`)
	write("3.0/callbacks.yaml", "info:\n  title: Callbacks demo\n  description: a much longer document body\n")
	write("3.0/petstore-expanded.json", `{"info":{"title":"Swagger Petstore"}}`)
	write("3.0/petstore-expanded.yaml", "info: {}\n")
	write("3.0/petstore.json", `{"info":{"title":"Swagger Petstore"}}`)
	write("3.0/petstore.yaml", "info: {}\n")
	write("3.0/tiny.json", `{}`)
	write("3.0/tiny.yaml", "a: 1\n")
	write("3.0/orphan.json", `{}`) // no yaml sibling
	write("2.0/petstore.json", `{}`)
	write("2.0/petstore.yaml", "swagger: '2.0'\n")

	versions, err := Scaffold(dir)
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if len(versions) != 2 || versions[0].Label != "2.0" || versions[1].Label != "3.0" {
		t.Fatalf("versions = %+v", versions)
	}

	got := versions[1].Examples
	wantIDs := []string{"petstore", "petstore-expanded", "tiny", "callbacks"}
	wantNames := []string{"Petstore", "Petstore Expanded", "Tiny", "Callbacks demo"}
	if len(got) != len(wantIDs) {
		t.Fatalf("3.0 examples = %+v", got)
	}
	for i := range wantIDs {
		if got[i].ID != wantIDs[i] {
			t.Errorf("examples[%d].ID = %q, want %q", i, got[i].ID, wantIDs[i])
		}
		if got[i].Name != wantNames[i] {
			t.Errorf("examples[%d].Name = %q, want %q", i, got[i].Name, wantNames[i])
		}
	}
}

func TestScaffoldEmpty(t *testing.T) {
	if _, err := Scaffold(t.TempDir()); err == nil {
		t.Error("expected error for a directory without examples")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"petstore simple", "Petstore Simple"},
		{"PETSTORE", "Petstore"},
		{"a  b", "A  B"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

// SearchEntry represents a single example page for the sidebar filter.
type SearchEntry struct {
	Path       string `json:"path"`
	Title      string `json:"title"`
	Version    string `json:"version"`
	Tab        string `json:"tab"`
	Identifier string `json:"identifier"`
}

// BuildSearchIndex lists every example page in catalog order.
func BuildSearchIndex(cat *catalog.Catalog) []SearchEntry {
	entries := []SearchEntry{}
	for _, label := range cat.Labels() {
		examples, _ := cat.Examples(label)
		for _, ex := range examples {
			entries = append(entries, SearchEntry{
				Path:       PagePath(label, ex.Identifier),
				Title:      ex.DisplayName,
				Version:    label,
				Tab:        viewer.TabName(label),
				Identifier: ex.Identifier,
			})
		}
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// exampleSummary is an example without its text.
type exampleSummary struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
}

type versionSummary struct {
	Label    string           `json:"label"`
	Tab      string           `json:"tab"`
	Examples []exampleSummary `json:"examples"`
}

type catalogResponse struct {
	Versions []versionSummary `json:"versions"`
	Count    int              `json:"count"`
}

// RegisterRoutes mounts read-only catalog endpoints under /api.
func RegisterRoutes(r chi.Router, cat *Catalog) {
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/catalog", handleCatalog(cat))
		r.Get("/catalog/{version}", handleVersion(cat))
		r.Get("/examples/{version}/{identifier}/{format}", handleExample(cat))
	})
}

func handleCatalog(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := catalogResponse{Versions: []versionSummary{}, Count: cat.Count()}
		for _, label := range cat.Labels() {
			resp.Versions = append(resp.Versions, summarize(cat, label))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleVersion(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		label := chi.URLParam(r, "version")
		if !cat.Has(label) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown version"})
			return
		}
		writeJSON(w, http.StatusOK, summarize(cat, label))
	}
}

func handleExample(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := cat.Example(chi.URLParam(r, "version"), chi.URLParam(r, "identifier"))
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		format := chi.URLParam(r, "format")
		text, ok := rec.Text(format)
		if !ok {
			http.Error(w, "unknown format", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", contentTypes[format])
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(text))
	}
}

var contentTypes = map[string]string{
	"json": "application/json",
	"yaml": "application/yaml",
}

func summarize(cat *Catalog, label string) versionSummary {
	examples, _ := cat.Examples(label)
	v := versionSummary{Label: label, Tab: "v" + label, Examples: make([]exampleSummary, len(examples))}
	for i, ex := range examples {
		v.Examples[i] = exampleSummary{Identifier: ex.Identifier, DisplayName: ex.DisplayName}
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

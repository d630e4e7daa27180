package viewer

import (
	"testing"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

func TestLinks(t *testing.T) {
	l := Links{
		RawTemplate:       "https://raw.githubusercontent.com/readmeio/oas-examples/main/{version}/{format}/{identifier}.{format}",
		ViewerTemplate:    "https://bin.readme.com/?url={url}",
		ViewerUnsupported: []string{"2.0"},
	}

	raw := l.RawURL("3.1", "petstore", FormatYAML)
	if raw != "https://raw.githubusercontent.com/readmeio/oas-examples/main/3.1/yaml/petstore.yaml" {
		t.Errorf("RawURL = %q", raw)
	}

	viewer := l.ViewerURL("3.1", "petstore", FormatYAML)
	want := "https://bin.readme.com/?url=https%3A%2F%2Fraw.githubusercontent.com%2Freadmeio%2Foas-examples%2Fmain%2F3.1%2Fyaml%2Fpetstore.yaml"
	if viewer != want {
		t.Errorf("ViewerURL = %q, want %q", viewer, want)
	}

	if got := l.ViewerURL("2.0", "petstore", FormatJSON); got != "" {
		t.Errorf("2.0 should have no viewer link, got %q", got)
	}
}

func TestLinksLocalRaw(t *testing.T) {
	l := Links{ViewerTemplate: "https://bin.readme.com/?url={url}"}
	if got := l.RawURL("3.0", "callbacks", FormatJSON); got != "raw/3.0/json/callbacks.json" {
		t.Errorf("RawURL = %q", got)
	}
	if got := l.ViewerURL("3.0", "callbacks", FormatJSON); got != "" {
		t.Errorf("ViewerURL for a site-relative raw link = %q", got)
	}
}

func TestLinksForSnapshot(t *testing.T) {
	l := Links{RawTemplate: "https://x/{version}/{identifier}.{format}", ViewerTemplate: "https://v/?u={url}"}
	raw, viewer := l.ForSnapshot(Snapshot{Version: "3.0", Example: "petstore", Format: FormatJSON})
	if raw != "https://x/3.0/petstore.json" {
		t.Errorf("raw = %q", raw)
	}
	if viewer != "https://v/?u=https%3A%2F%2Fx%2F3.0%2Fpetstore.json" {
		t.Errorf("viewer = %q", viewer)
	}
}

func TestLinksFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	l := LinksFromConfig(cfg)
	if l.RawTemplate != config.DefaultRawURL || l.ViewerTemplate != config.DefaultViewerURL {
		t.Errorf("links = %+v", l)
	}
	if l.ViewerURL("2.0", "petstore", FormatJSON) != "" {
		t.Error("2.0 should be unsupported by default")
	}
	if l.ViewerURL("3.0", "petstore", FormatJSON) == "" {
		t.Error("3.0 should have a viewer link by default")
	}
}

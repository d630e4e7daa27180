package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/config"
	"github.com/ziadkadry99/oas-examples/internal/progress"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

// SiteGenerator renders a catalog into a static HTML site.
type SiteGenerator struct {
	Catalog        *catalog.Catalog
	OutputDir      string
	SiteTitle      string
	Tagline        string
	IntroFile      string
	RepoURL        string
	DefaultVersion string
	HighlightStyle string
	Links          viewer.Links
	Reporter       progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator for cat using the presentation
// settings in cfg.
func NewSiteGenerator(cat *catalog.Catalog, cfg *config.Config, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Catalog:        cat,
		OutputDir:      outputDir,
		SiteTitle:      cfg.SiteTitle,
		Tagline:        cfg.Tagline,
		IntroFile:      cfg.IntroFile,
		RepoURL:        cfg.RepoURL,
		DefaultVersion: cfg.DefaultVersion,
		HighlightStyle: cfg.HighlightStyle,
		Links:          viewer.LinksFromConfig(cfg),
		Reporter:       progress.Nop{},
	}
}

// navLink is one tab or sidebar entry on a rendered page.
type navLink struct {
	Name   string
	Href   string
	Active bool
}

// formatBlock is one serialization of the shown example.
type formatBlock struct {
	Format    viewer.Format
	Label     string
	Active    bool
	Code      template.HTML
	Source    string
	RawURL    string
	ViewerURL string
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	SiteTitle   string
	Tagline     string
	Intro       template.HTML
	RepoURL     string
	BasePath    string
	Version     string
	Identifier  string
	DisplayName string
	Format      viewer.Format
	Tabs        []navLink
	Examples    []navLink
	Blocks      []formatBlock
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate() (int, error) {
	if g.Catalog == nil || g.Catalog.Count() == 0 {
		return 0, fmt.Errorf("catalog has no examples")
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	state, err := viewer.New(g.Catalog, viewer.WithDefaultVersion(g.DefaultVersion))
	if err != nil {
		return 0, err
	}
	defer state.Close()

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	hl := newHighlighter(g.HighlightStyle)

	if err := g.writeAssets(hl); err != nil {
		return 0, err
	}
	if err := g.writeCatalog(); err != nil {
		return 0, fmt.Errorf("writing catalog: %w", err)
	}
	if err := WriteSearchIndex(BuildSearchIndex(g.Catalog), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}
	if err := g.writeRawCopies(); err != nil {
		return 0, fmt.Errorf("writing raw copies: %w", err)
	}

	intro, err := g.renderIntro(hl)
	if err != nil {
		return 0, fmt.Errorf("rendering intro: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	total := g.Catalog.Count() + 1
	reporter.Start(total)
	defer reporter.Finish()

	// The landing page is the fresh view-state.
	if err := g.renderPage(tmpl, hl, intro, state.Snapshot(), "index.html"); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}
	pages := 1
	reporter.Update(pages, "index.html")

	for _, tab := range state.Tabs() {
		if err := state.SelectVersion(tab.Version); err != nil {
			return 0, err
		}
		for _, entry := range state.Examples() {
			if err := state.SelectExample(entry.Identifier); err != nil {
				return 0, err
			}
			rel := PagePath(tab.Version, entry.Identifier)
			if err := g.renderPage(tmpl, hl, intro, state.Snapshot(), rel); err != nil {
				return 0, fmt.Errorf("rendering %s: %w", rel, err)
			}
			pages++
			reporter.Update(pages, rel)
		}
	}

	return pages, nil
}

// PagePath is the site-relative HTML page of one example.
func PagePath(version, identifier string) string {
	return path.Join(version, identifier+".html")
}

// renderPage writes the page for one view-state snapshot.
func (g *SiteGenerator) renderPage(tmpl *template.Template, hl *highlighter, intro template.HTML, snap viewer.Snapshot, relPath string) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	// Compute base path for CSS/JS references.
	basePath := strings.Repeat("../", strings.Count(relPath, "/"))

	data := pageData{
		Title:       snap.DisplayName,
		SiteTitle:   g.SiteTitle,
		Tagline:     g.Tagline,
		Intro:       intro,
		RepoURL:     g.RepoURL,
		BasePath:    basePath,
		Version:     snap.Version,
		Identifier:  snap.Example,
		DisplayName: snap.DisplayName,
		Format:      snap.Format,
	}

	for _, tab := range snap.Tabs {
		first, _ := g.Catalog.First(tab.Version)
		data.Tabs = append(data.Tabs, navLink{
			Name:   tab.Name,
			Href:   basePath + PagePath(tab.Version, first.Identifier),
			Active: tab.Active,
		})
	}
	for _, e := range snap.Examples {
		data.Examples = append(data.Examples, navLink{
			Name:   e.DisplayName,
			Href:   basePath + PagePath(snap.Version, e.Identifier),
			Active: e.Active,
		})
	}

	for _, f := range viewer.Formats {
		text := snap.JSONText
		if f == viewer.FormatYAML {
			text = snap.YAMLText
		}
		code, err := hl.Highlight(text, f)
		if err != nil {
			return err
		}
		raw := g.Links.RawURL(snap.Version, snap.Example, f)
		if !strings.Contains(raw, "://") {
			raw = basePath + raw
		}
		data.Blocks = append(data.Blocks, formatBlock{
			Format:    f,
			Label:     strings.ToUpper(string(f)),
			Active:    f == snap.Format,
			Code:      code,
			Source:    text,
			RawURL:    raw,
			ViewerURL: g.Links.ViewerURL(snap.Version, snap.Example, f),
		})
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// renderIntro converts the optional intro markdown to HTML.
func (g *SiteGenerator) renderIntro(hl *highlighter) (template.HTML, error) {
	if g.IntroFile == "" {
		return "", nil
	}
	content, err := os.ReadFile(g.IntroFile)
	if err != nil {
		return "", err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(g.HighlightStyle),
				highlighting.WithFormatOptions(hl.formatOptions()...),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// writeAssets writes style.css, with the highlight palette appended, and script.js.
func (g *SiteGenerator) writeAssets(hl *highlighter) error {
	var css bytes.Buffer
	css.WriteString(cssContent)
	css.WriteString("\n/* ============ Syntax highlighting ============ */\n")
	if err := hl.WriteCSS(&css); err != nil {
		return fmt.Errorf("writing highlight css: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), css.Bytes(), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644)
}

// writeCatalog writes catalog.json with versions in declared order.
func (g *SiteGenerator) writeCatalog() error {
	data, err := json.MarshalIndent(g.Catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "catalog.json"), data, 0o644)
}

// writeRawCopies writes every example under raw/<version>/<format>/ so the
// site-relative raw links resolve.
func (g *SiteGenerator) writeRawCopies() error {
	for _, label := range g.Catalog.Labels() {
		examples, _ := g.Catalog.Examples(label)
		for _, ex := range examples {
			for _, f := range viewer.Formats {
				text := ex.JSONText
				if f == viewer.FormatYAML {
					text = ex.YAMLText
				}
				outPath := filepath.Join(g.OutputDir, filepath.FromSlash(viewer.LocalRawPath(label, ex.Identifier, f)))
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return err
				}
				if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

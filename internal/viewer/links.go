package viewer

import (
	"net/url"
	"slices"
	"strings"

	"github.com/ziadkadry99/oas-examples/internal/config"
)

// Links turns a (version, identifier, format) triple into outbound URLs.
type Links struct {
	// RawTemplate uses {version}, {identifier} and {format}. Empty means the
	// site-relative raw copy written by the build.
	RawTemplate string
	// ViewerTemplate uses {url}, the query-escaped raw URL. Empty disables the
	// external viewer link.
	ViewerTemplate string
	// ViewerUnsupported lists versions the external viewer cannot open.
	ViewerUnsupported []string
}

// LinksFromConfig reads the link templates from cfg.
func LinksFromConfig(cfg *config.Config) Links {
	return Links{
		RawTemplate:       cfg.RawURL,
		ViewerTemplate:    cfg.ViewerURL,
		ViewerUnsupported: cfg.ViewerUnsupportedVersions,
	}
}

// LocalRawPath is the site-relative location of a raw example copy.
func LocalRawPath(version, identifier string, format Format) string {
	return "raw/" + version + "/" + string(format) + "/" + identifier + "." + string(format)
}

// RawURL returns the "view raw" link.
func (l Links) RawURL(version, identifier string, format Format) string {
	if l.RawTemplate == "" {
		return LocalRawPath(version, identifier, format)
	}
	r := strings.NewReplacer(
		"{version}", version,
		"{identifier}", identifier,
		"{format}", string(format),
	)
	return r.Replace(l.RawTemplate)
}

// ViewerURL returns the external viewer link, or "" when the version is not
// supported, no viewer is configured, or the raw link is site-relative and so
// unreachable for the external viewer.
func (l Links) ViewerURL(version, identifier string, format Format) string {
	if l.ViewerTemplate == "" || l.RawTemplate == "" || slices.Contains(l.ViewerUnsupported, version) {
		return ""
	}
	raw := l.RawURL(version, identifier, format)
	return strings.ReplaceAll(l.ViewerTemplate, "{url}", url.QueryEscape(raw))
}

// ForSnapshot returns both links for a snapshot.
func (l Links) ForSnapshot(s Snapshot) (raw, viewer string) {
	return l.RawURL(s.Version, s.Example, s.Format), l.ViewerURL(s.Version, s.Example, s.Format)
}

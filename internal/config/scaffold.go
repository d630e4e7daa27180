package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// wellKnownOrder pins the petstore family and the extensions showcase to the
// top of a version's list. Everything else follows by document size.
var wellKnownOrder = map[string]int{
	"petstore":          1,
	"petstore-simple":   2,
	"petstore-minimal":  3,
	"petstore-expanded": 4,
	"readme-extensions": 5,
}

// Scaffold scans dir for <version>/<id>.json files that have a matching
// <version>/<id>.yaml and suggests a declarative version list. Titles are
// guessed from the filename for the petstore family and from info.title
// otherwise. The result is meant to be reviewed and saved into the config;
// builds never scan.
func Scaffold(dir string) ([]VersionConfig, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "*/*.json")
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no <version>/<id>.json files found in %s", dir)
	}

	type candidate struct {
		ex   ExampleConfig
		size int64
	}
	byVersion := make(map[string][]candidate)
	for _, m := range matches {
		version := path.Dir(m)
		id := strings.TrimSuffix(path.Base(m), ".json")

		yamlInfo, err := fs.Stat(fsys, path.Join(version, id+".yaml"))
		if err != nil {
			continue
		}
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", m, err)
		}
		byVersion[version] = append(byVersion[version], candidate{
			ex:   ExampleConfig{ID: id, Name: suggestTitle(id, data)},
			size: yamlInfo.Size(),
		})
	}

	labels := make([]string, 0, len(byVersion))
	for v := range byVersion {
		labels = append(labels, v)
	}
	sort.Strings(labels)

	versions := make([]VersionConfig, 0, len(labels))
	for _, label := range labels {
		cands := byVersion[label]
		sort.SliceStable(cands, func(i, j int) bool {
			oi, oj := wellKnownOrder[cands[i].ex.ID], wellKnownOrder[cands[j].ex.ID]
			switch {
			case oi != 0 && oj != 0:
				return oi < oj
			case oi != 0:
				return true
			case oj != 0:
				return false
			}
			if cands[i].size != cands[j].size {
				return cands[i].size < cands[j].size
			}
			return cands[i].ex.ID < cands[j].ex.ID
		})
		vc := VersionConfig{Label: label}
		for _, c := range cands {
			vc.Examples = append(vc.Examples, c.ex)
		}
		versions = append(versions, vc)
	}
	return versions, nil
}

// suggestTitle returns a display title for an example file.
func suggestTitle(id string, data []byte) string {
	if strings.Contains(id, "petstore") {
		return titleCase(strings.ReplaceAll(id, "-", " "))
	}
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && strings.TrimSpace(doc.Info.Title) != "" {
		return strings.TrimSpace(doc.Info.Title)
	}
	return titleCase(strings.ReplaceAll(id, "-", " "))
}

// titleCase upper-cases the first letter of each space separated word and
// lower-cases the rest.
func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
